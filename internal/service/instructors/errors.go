package instructors

import "errors"

var (
	// ErrInstructorNotFound возвращается, когда инструктор не найден
	ErrInstructorNotFound = errors.New("instructors: instructor not found")

	// ErrEmailTaken возвращается при регистрации на уже занятый email
	ErrEmailTaken = errors.New("instructors: email already registered")

	// ErrInvalidCredentials возвращается при неверной паре email/пароль
	ErrInvalidCredentials = errors.New("instructors: invalid email or password")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("instructors: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("instructors: internal error")
)
