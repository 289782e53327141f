package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	InstructorID int64     // ID инструктора
	ClientName   string    // Имя клиента
	ClientPhone  string    // Телефон клиента
	ClientEmail  string    // Email клиента
	StartTime    time.Time // Начало занятия
	EndTime      time.Time // Конец занятия
	Notes        *string   // Комментарий клиента (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64
	InstructorID int64
	StartTime    time.Time
	EndTime      time.Time
	Status       string
	CreatedAt    time.Time
}
