package store

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-process Collection with the same exact-match filter
// semantics as the Mongo adapter: dotted paths reach embedded documents
// and numeric comparisons bracket across bson integer/double types.
// Used by tests; safe for concurrent use.
type Memory struct {
	mu   sync.RWMutex
	docs []bson.M
}

func NewMemory() *Memory {
	return &Memory{}
}

// Len reports the number of stored documents.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.docs)
}

func (m *Memory) Find(ctx context.Context, filter bson.M, out any) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	outv := reflect.ValueOf(out)
	if outv.Kind() != reflect.Pointer || outv.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("memory find: out must be a pointer to a slice, got %T", out)
	}
	slice := outv.Elem()
	slice.SetLen(0)
	elemType := slice.Type().Elem()

	for _, doc := range m.docs {
		if !matches(doc, filter) {
			continue
		}
		elem := reflect.New(elemType)
		if err := remarshal(doc, elem.Interface()); err != nil {
			return err
		}
		slice = reflect.Append(slice, elem.Elem())
	}
	outv.Elem().Set(slice)
	return nil
}

func (m *Memory) FindOne(ctx context.Context, filter bson.M, out any) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, doc := range m.docs {
		if matches(doc, filter) {
			return remarshal(doc, out)
		}
	}
	return ErrNotFound
}

func (m *Memory) InsertOne(ctx context.Context, doc any) (InsertResult, error) {
	var stored bson.M
	if err := remarshal(doc, &stored); err != nil {
		return InsertResult{}, err
	}

	id, ok := stored["_id"].(primitive.ObjectID)
	if !ok || id.IsZero() {
		id = primitive.NewObjectID()
		stored["_id"] = id
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = append(m.docs, stored)
	return InsertResult{InsertedID: id}, nil
}

func (m *Memory) UpdateOne(ctx context.Context, filter bson.M, set bson.M) (UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, doc := range m.docs {
		if !matches(doc, filter) {
			continue
		}
		var modified int64
		for key, val := range set {
			if !equalValues(lookup(doc, key), val) {
				modified = 1
			}
			doc[key] = val
		}
		return UpdateResult{MatchedCount: 1, ModifiedCount: modified}, nil
	}
	return UpdateResult{}, nil
}

func (m *Memory) DeleteOne(ctx context.Context, filter bson.M) (DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, doc := range m.docs {
		if matches(doc, filter) {
			m.docs = append(m.docs[:i], m.docs[i+1:]...)
			return DeleteResult{DeletedCount: 1}, nil
		}
	}
	return DeleteResult{}, nil
}

// remarshal round-trips a value through bson so stored documents carry
// driver types (primitive.ObjectID, int32, primitive.DateTime) exactly
// as the Mongo adapter would see them.
func remarshal(in, out any) error {
	raw, err := bson.Marshal(in)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}

func matches(doc bson.M, filter bson.M) bool {
	for key, want := range filter {
		if !equalValues(lookup(doc, key), want) {
			return false
		}
	}
	return true
}

// lookup walks a dotted path through embedded documents.
func lookup(doc bson.M, path string) any {
	var cur any = doc
	for _, seg := range strings.Split(path, ".") {
		switch d := cur.(type) {
		case bson.M:
			cur = d[seg]
		case bson.D:
			var found any
			for _, e := range d {
				if e.Key == seg {
					found = e.Value
					break
				}
			}
			cur = found
		default:
			return nil
		}
	}
	return cur
}

// equalValues compares scalars the way a mongo filter does: integers and
// doubles of any width compare by numeric value, and named string types
// (status/role enums) compare by their underlying string.
func equalValues(got, want any) bool {
	if gf, ok := asFloat(got); ok {
		wf, ok := asFloat(want)
		return ok && gf == wf
	}
	gv, wv := reflect.ValueOf(got), reflect.ValueOf(want)
	if gv.IsValid() && wv.IsValid() && gv.Kind() == reflect.String && wv.Kind() == reflect.String {
		return gv.String() == wv.String()
	}
	return got == want
}

func asFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
