package apierrors

const (
	MsgNotAuthenticated      = "notAuthenticated"
	MsgInvalidSession        = "invalidSession"
	MsgInvalidCredentials    = "invalidCredentials"
	MsgInvalidRegistration   = "invalidRegistration"
	MsgInvalidUserID         = "invalidUserID"
	MsgUserNotFound          = "userNotFound"
	MsgInvalidUserPayload    = "invalidUserPayload"
	MsgFailListUsers         = "failListUsers"
	MsgFailCreateUser        = "failCreateUser"
	MsgFailChangePassword    = "failChangePassword"
	MsgFailDeleteUser        = "failDeleteUser"
	MsgInvalidTodoID         = "invalidTodoID"
	MsgTodoNotFound          = "todoNotFound"
	MsgFailListTodos         = "failListTodos"
	MsgFailCreateTodo        = "failCreateTodo"
	MsgFailIssueToken        = "failIssueToken"
)
