package instructor

import "github.com/m04kA/SMC-InstructorScheduler/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
