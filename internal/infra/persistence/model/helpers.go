package model

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"influencerhub/internal/errors"
)

// objectIDFromHex parses an entity ID. A blank ID yields the zero ObjectID so
// inserts with omitempty let the driver generate one.
func objectIDFromHex(id string) (bson.ObjectID, error) {
	if id == "" {
		return bson.NilObjectID, nil
	}

	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, errors.Wrapf(err, "invalid object id %q", id)
	}

	return oid, nil
}

// objectIDsFromHex parses a list of entity IDs, skipping blanks.
func objectIDsFromHex(ids []string) ([]bson.ObjectID, error) {
	oids := make([]bson.ObjectID, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		oid, err := objectIDFromHex(id)
		if err != nil {
			return nil, err
		}
		oids = append(oids, oid)
	}

	return oids, nil
}

// hexStrings renders ObjectIDs back to their entity string form.
func hexStrings(oids []bson.ObjectID) []string {
	ids := make([]string, 0, len(oids))
	for _, oid := range oids {
		ids = append(ids, oid.Hex())
	}

	return ids
}
