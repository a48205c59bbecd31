package user

// Тексты сообщений пользовательских операций и межполевых проверок.
const (
	UserAlreadyExist         = "User already exist."
	UserNotFound             = "User not found."
	UsersNotFound            = "Users not found."
	UserWasDeleted           = "User was deleted."
	UserNotExist             = "User not exist."
	DeleteYourselfValidation = "You can not delete yourself."
	InvalidLogin             = "Invalid login."
	InvalidPassword          = "Invalid password."
)
