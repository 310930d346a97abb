package mongo

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
)

// objectID parses a hex path parameter.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}

func idString(v interface{}) string {
	switch id := v.(type) {
	case nil:
		return ""
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprint(id)
	}
}

func toInsertResult(res *mongo.InsertOneResult) *domain.InsertResult {
	return &domain.InsertResult{Acknowledged: true, InsertedID: idString(res.InsertedID)}
}

func toUpdateResult(res *mongo.UpdateResult) *domain.UpdateResult {
	return &domain.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    idString(res.UpsertedID),
	}
}

func toDeleteResult(res *mongo.DeleteResult) *domain.DeleteResult {
	return &domain.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}
}

// setDocument marshals an omitempty update struct for use as a $set operand.
// It fails with domain.ErrEmptyUpdate when no field survives.
func setDocument(update interface{}) (bson.M, error) {
	raw, err := bson.Marshal(update)
	if err != nil {
		return nil, fmt.Errorf("marshal update: %w", err)
	}
	var set bson.M
	if err := bson.Unmarshal(raw, &set); err != nil {
		return nil, fmt.Errorf("unmarshal update: %w", err)
	}
	if len(set) == 0 {
		return nil, domain.ErrEmptyUpdate
	}
	return set, nil
}

// insertDefaults returns the defaults not already present in set, for use as
// a $setOnInsert operand. Mongo rejects a path appearing in both operators.
func insertDefaults(set bson.M, defaults bson.M) bson.M {
	out := bson.M{}
	for k, v := range defaults {
		if _, ok := set[k]; !ok {
			out[k] = v
		}
	}
	return out
}
