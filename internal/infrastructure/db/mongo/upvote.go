package mongo

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
)

// upvote records voter on the document with the given _id in a single
// conditional update, so upvotes always equals len(upVotedUsers) even under
// concurrent votes. When nothing matched, a follow-up count tells a missing
// document (notFound) apart from a repeated vote.
func upvote(ctx context.Context, col *mongo.Collection, id interface{}, voter string, notFound error) (*domain.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id, "upVotedUsers": bson.M{"$ne": voter}}
	update := bson.M{
		"$inc":  bson.M{"upvotes": 1},
		"$push": bson.M{"upVotedUsers": voter},
	}
	res, err := col.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, errors.Wrapf(err, "upvote %v", id)
	}
	if res.MatchedCount > 0 {
		return toUpdateResult(res), nil
	}

	n, err := col.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return nil, errors.Wrapf(err, "upvote %v: existence check", id)
	}
	if n == 0 {
		return nil, notFound
	}
	return nil, domain.ErrAlreadyUpvoted
}
