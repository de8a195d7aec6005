package partido

import "go.mongodb.org/mongo-driver/bson/primitive"

// Partido is a fixture record as stored in the partidos collection. Its shape
// follows the upstream feed so synced items can be inserted as decoded.
type Partido struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	League  League             `json:"league" bson:"league"`
	Teams   Teams              `json:"teams" bson:"teams"`
	Fixture Fixture            `json:"fixture" bson:"fixture"`
	Goals   Goals              `json:"goals" bson:"goals"`
}

type League struct {
	ID      int    `json:"id" bson:"id"`
	Name    string `json:"name" bson:"name"`
	Country string `json:"country" bson:"country"`
	Logo    string `json:"logo" bson:"logo"`
}

type Teams struct {
	Home Team `json:"home" bson:"home"`
	Away Team `json:"away" bson:"away"`
}

type Team struct {
	ID   int    `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
	Logo string `json:"logo" bson:"logo"`
}

type Fixture struct {
	Date   string        `json:"date" bson:"date"`
	Status FixtureStatus `json:"status" bson:"status"`
	Venue  Venue         `json:"venue" bson:"venue"`
}

// FixtureStatus carries the feed's match state. Elapsed and Extra are null
// before kick-off.
type FixtureStatus struct {
	Long    string `json:"long" bson:"long"`
	Short   string `json:"short" bson:"short"`
	Elapsed *int   `json:"elapsed" bson:"elapsed"`
	Extra   *int   `json:"extra" bson:"extra"`
}

type Venue struct {
	Name string `json:"name" bson:"name"`
	City string `json:"city" bson:"city"`
}

// Goals are null until a match has started.
type Goals struct {
	Home *int `json:"home" bson:"home"`
	Away *int `json:"away" bson:"away"`
}
