package constants

// NATS subjects published by the auth service
const (
	SubjectAuthSMSDispatch = "auth.sms.dispatch"
	SubjectAuthUserLogin   = "auth.user.login"
)
