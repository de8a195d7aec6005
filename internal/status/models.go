package status

import "go.mongodb.org/mongo-driver/bson/primitive"

// Record is one account/quota snapshot taken from the feed. Records are
// append-only: one per sync run.
type Record struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Account      Account            `json:"account" bson:"account"`
	Subscription Subscription       `json:"subscription" bson:"subscription"`
	Requests     Requests           `json:"requests" bson:"requests"`
}

type Account struct {
	Firstname string `json:"firstname" bson:"firstname"`
	Lastname  string `json:"lastname" bson:"lastname"`
	Email     string `json:"email" bson:"email"`
}

type Subscription struct {
	Plan   string `json:"plan" bson:"plan"`
	End    string `json:"end" bson:"end"`
	Active bool   `json:"active" bson:"active"`
}

type Requests struct {
	Current  int `json:"current" bson:"current"`
	LimitDay int `json:"limit_day" bson:"limit_day"`
}
