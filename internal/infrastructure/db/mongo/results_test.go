package mongo

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/ports"
)

func TestObjectID(t *testing.T) {
	oid := primitive.NewObjectID()
	got, err := objectID(oid.Hex())
	if err != nil || got != oid {
		t.Fatalf("objectID(%q) = %v, %v", oid.Hex(), got, err)
	}

	for _, bad := range []string{"", "xyz", "65f0c0ffee"} {
		if _, err := objectID(bad); !errors.Is(err, domain.ErrInvalidID) {
			t.Errorf("objectID(%q): expected ErrInvalidID, got %v", bad, err)
		}
	}
}

func TestIDString(t *testing.T) {
	oid := primitive.NewObjectID()
	if got := idString(oid); got != oid.Hex() {
		t.Errorf("expected hex, got %q", got)
	}
	if got := idString("spot-1"); got != "spot-1" {
		t.Errorf("expected string id, got %q", got)
	}
	if got := idString(nil); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}

func TestSetDocument_OmitsZeroFields(t *testing.T) {
	set, err := setDocument(domain.ListingUpdate{ProductName: "Gizmo", Tags: []string{"ai"}})
	if err != nil {
		t.Fatalf("setDocument returned error: %v", err)
	}
	if len(set) != 2 {
		t.Fatalf("expected 2 fields, got %v", set)
	}
	if _, ok := set["upvotes"]; ok {
		t.Errorf("upvotes must never be part of an update")
	}
}

func TestSetDocument_Empty(t *testing.T) {
	if _, err := setDocument(domain.CouponUpdate{}); !errors.Is(err, domain.ErrEmptyUpdate) {
		t.Errorf("expected ErrEmptyUpdate, got %v", err)
	}

	zero := 0.0
	set, err := setDocument(domain.CouponUpdate{DiscountAmount: &zero})
	if err != nil {
		t.Fatalf("explicit zero discount must be kept: %v", err)
	}
	if _, ok := set["discountAmount"]; !ok {
		t.Errorf("expected discountAmount in %v", set)
	}
}

func TestInsertDefaults_SkipsSetPaths(t *testing.T) {
	got := insertDefaults(bson.M{"status": "Accepted"}, bson.M{"status": "Pending", "upvotes": 0})
	if _, ok := got["status"]; ok {
		t.Errorf("status is already set and must not be defaulted")
	}
	if _, ok := got["upvotes"]; !ok {
		t.Errorf("expected upvotes default")
	}
}

func TestListingQuery(t *testing.T) {
	q := listingQuery(ports.ListingFilter{Status: domain.StatusAccepted, Search: "c++"})
	if q["status"] != "Accepted" {
		t.Errorf("expected status filter, got %v", q["status"])
	}
	re, ok := q["tags"].(primitive.Regex)
	if !ok {
		t.Fatalf("expected regex on tags, got %T", q["tags"])
	}
	if re.Pattern != `c\+\+` || re.Options != "i" {
		t.Errorf("unexpected regex %+v", re)
	}

	if len(listingQuery(ports.ListingFilter{})) != 0 {
		t.Errorf("empty filter must match everything")
	}
}

func TestListingSort(t *testing.T) {
	s := listingSort(ports.ListingFilter{ByUpvotes: true})
	if len(s) != 2 || s[0].Key != "upvotes" || s[0].Value != -1 || s[1].Key != "_id" {
		t.Errorf("unexpected trending sort %v", s)
	}
}
