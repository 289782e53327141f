package schedule

import "github.com/m04kA/SMC-InstructorScheduler/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
