package models

// Counter is a durable named sequence used to mint human-readable IDs.
// It is only ever mutated through an atomic increment at the store.
type Counter struct {
	Name string `bson:"name" json:"name"`
	Seq  int64  `bson:"seq" json:"seq"`
}
