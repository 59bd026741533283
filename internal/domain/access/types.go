package access

type AccessState string

const (
	AccessTrial AccessState = "trial"
	AccessPaid  AccessState = "paid"
	AccessGrace AccessState = "grace" // canceled or past due, paid-through period still running
	AccessFree  AccessState = "free"
)
