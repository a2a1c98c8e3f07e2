package models

import "go.mongodb.org/mongo-driver/v2/bson"

// SetFields returns the fields of an equipment update body that may be
// passed to $set. The store rejects any change to _id, so it is dropped.
func SetFields(body bson.D) bson.D {
	fields := make(bson.D, 0, len(body))
	for _, e := range body {
		if e.Key == "_id" {
			continue
		}
		fields = append(fields, e)
	}
	return fields
}
