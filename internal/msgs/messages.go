package msgs

const (
	MsgOperationSuccessful     = "Operation successful"
	MsgOperationFailed         = "Operation failed"
	MsgUserCreatedSuccessfully = "User created successfully"
	MsgYouMustLoginFirst       = "You must login first"
)
