package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Clients send document ids either as the raw hex string or as the ObjectId
// the document was stored under, so id lookups match both encodings.

func orIDFilter(id string) bson.M {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return bson.M{"_id": id}
	}
	return bson.M{"$or": bson.A{
		bson.M{"_id": id},
		bson.M{"_id": oid},
	}}
}

func orIDInFilter(ids []string) bson.M {
	asStrings := make(bson.A, 0, len(ids))
	asObjectIDs := make(bson.A, 0, len(ids))
	for _, id := range ids {
		asStrings = append(asStrings, id)
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			asObjectIDs = append(asObjectIDs, oid)
		}
	}
	return bson.M{"$or": bson.A{
		bson.M{"_id": bson.M{"$in": asObjectIDs}},
		bson.M{"_id": bson.M{"$in": asStrings}},
	}}
}
