package handlers

import (
	"context"
	"errors"
	"reflect"
	"sync"

	"equisports-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var errStore = errors.New("store unavailable")

type fakeUserStore struct {
	mu         sync.Mutex
	docs       []bson.M
	fail       bool
	calls      int
	lastFilter any
}

func toM(doc bson.D) bson.M {
	m := bson.M{}
	for _, e := range doc {
		m[e.Key] = e.Value
	}
	return m
}

func (s *fakeUserStore) Create(_ context.Context, user bson.D) (*models.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.fail {
		return nil, errStore
	}
	id := bson.NewObjectID()
	m := toM(user)
	m["_id"] = id
	s.docs = append(s.docs, m)
	return &models.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (s *fakeUserStore) FindAll(context.Context) ([]bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.fail {
		return nil, errStore
	}
	return append([]bson.M{}, s.docs...), nil
}

func (s *fakeUserStore) UpdateLastSignIn(_ context.Context, email, lastSignInTime any) (*models.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.lastFilter = email
	if s.fail {
		return nil, errStore
	}
	res := &models.UpdateResult{Acknowledged: true}
	for _, doc := range s.docs {
		if doc["email"] == email {
			res.MatchedCount = 1
			if doc["lastSignInTime"] != lastSignInTime {
				doc["lastSignInTime"] = lastSignInTime
				res.ModifiedCount = 1
			}
			break
		}
	}
	return res, nil
}

type fakeEquipmentStore struct {
	mu         sync.Mutex
	docs       map[bson.ObjectID]bson.M
	fail       bool
	lastFields bson.D
}

func newFakeEquipmentStore() *fakeEquipmentStore {
	return &fakeEquipmentStore{docs: map[bson.ObjectID]bson.M{}}
}

func (s *fakeEquipmentStore) Create(_ context.Context, equipment bson.D) (*models.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, errStore
	}
	id := bson.NewObjectID()
	m := toM(equipment)
	m["_id"] = id
	s.docs[id] = m
	return &models.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (s *fakeEquipmentStore) FindAll(context.Context) ([]bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, errStore
	}
	out := []bson.M{}
	for _, doc := range s.docs {
		out = append(out, doc)
	}
	return out, nil
}

func (s *fakeEquipmentStore) FindByID(_ context.Context, id bson.ObjectID) (bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, errStore
	}
	doc, ok := s.docs[id]
	if !ok {
		return nil, nil
	}
	return doc, nil
}

func (s *fakeEquipmentStore) UpdateByID(_ context.Context, id bson.ObjectID, fields bson.D) (*models.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastFields = fields
	if s.fail {
		return nil, errStore
	}
	doc, ok := s.docs[id]
	if !ok {
		return &models.UpdateResult{Acknowledged: true}, nil
	}
	res := &models.UpdateResult{Acknowledged: true, MatchedCount: 1}
	for _, e := range fields {
		if !reflect.DeepEqual(doc[e.Key], e.Value) {
			doc[e.Key] = e.Value
			res.ModifiedCount = 1
		}
	}
	return res, nil
}
