package models

// SignIn is the body of PATCH /users. Only the two fields below are read and
// both are used as sent: a missing email filters on null, which matches users
// without one.
type SignIn struct {
	Email          any `bson:"email" json:"email"`
	LastSignInTime any `bson:"lastSignInTime" json:"lastSignInTime"`
}
