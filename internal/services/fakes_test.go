package services

import (
	"context"
	"errors"
	"io"

	"kyc-service/internal/event"
	"kyc-service/internal/models"
	"kyc-service/internal/repository"
)

type fakeUserRepo struct {
	users      map[int64]*models.User
	nextID     int64
	createErr  error
	updateErr  error
	deleteErr  error
	deletedIDs []int64
}

func newFakeUserRepo(ids ...int64) *fakeUserRepo {
	r := &fakeUserRepo{users: map[int64]*models.User{}, nextID: 1}
	for _, id := range ids {
		r.users[id] = &models.User{ID: id, Name: "test", Phone: "9999999999"}
		if id >= r.nextID {
			r.nextID = id + 1
		}
	}
	return r
}

func (r *fakeUserRepo) CreateUser(req *models.CreateUserRequest) (int64, error) {
	if r.createErr != nil {
		return 0, r.createErr
	}
	id := r.nextID
	r.nextID++
	r.users[id] = &models.User{ID: id, Name: req.Name, Phone: req.Phone, Aadhaar: req.Aadhaar}
	return id, nil
}

func (r *fakeUserRepo) GetUserByID(id int64) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) UpdateUser(id int64, req *models.UpdateUserRequest) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	return nil
}

func (r *fakeUserRepo) DeleteUser(id int64) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(r.users, id)
	r.deletedIDs = append(r.deletedIDs, id)
	return nil
}

type fakeDocumentRepo struct {
	docs      map[int64]*models.Document
	nextID    int64
	createErr error
	statusSet map[int64]string
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: map[int64]*models.Document{}, nextID: 1, statusSet: map[int64]string{}}
}

func (r *fakeDocumentRepo) CreateDocument(userID int64, docType, docURL string) (int64, error) {
	if r.createErr != nil {
		return 0, r.createErr
	}
	id := r.nextID
	r.nextID++
	r.docs[id] = &models.Document{ID: id, UserID: userID, DocType: docType, DocURL: docURL, Status: string(models.StatusPending)}
	return id, nil
}

func (r *fakeDocumentRepo) GetDocumentByID(id int64) (*models.Document, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, repository.ErrDocumentNotFound
	}
	return doc, nil
}

func (r *fakeDocumentRepo) ListDocumentsByUserID(userID int64) ([]models.Document, error) {
	out := []models.Document{}
	for id := int64(1); id < r.nextID; id++ {
		if doc, ok := r.docs[id]; ok && doc.UserID == userID {
			out = append(out, *doc)
		}
	}
	return out, nil
}

func (r *fakeDocumentRepo) DeleteDocument(id int64) error {
	if _, ok := r.docs[id]; !ok {
		return repository.ErrDocumentNotFound
	}
	delete(r.docs, id)
	return nil
}

func (r *fakeDocumentRepo) UpdateDocumentStatus(id int64, status string) error {
	doc, ok := r.docs[id]
	if !ok {
		return repository.ErrDocumentNotFound
	}
	doc.Status = status
	r.statusSet[id] = status
	return nil
}

type fakeFaceRepo struct {
	faces     map[int64]*models.Face
	nextID    int64
	createErr error
}

func newFakeFaceRepo() *fakeFaceRepo {
	return &fakeFaceRepo{faces: map[int64]*models.Face{}, nextID: 1}
}

func (r *fakeFaceRepo) CreateFace(userID int64, faceURL string) (int64, error) {
	if r.createErr != nil {
		return 0, r.createErr
	}
	id := r.nextID
	r.nextID++
	r.faces[id] = &models.Face{ID: id, UserID: userID, FaceURL: faceURL, Status: string(models.StatusPending)}
	return id, nil
}

func (r *fakeFaceRepo) GetFaceByID(id int64) (*models.Face, error) {
	face, ok := r.faces[id]
	if !ok {
		return nil, repository.ErrFaceNotFound
	}
	return face, nil
}

func (r *fakeFaceRepo) ListFacesByUserID(userID int64) ([]models.Face, error) {
	out := []models.Face{}
	for id := int64(1); id < r.nextID; id++ {
		if face, ok := r.faces[id]; ok && face.UserID == userID {
			out = append(out, *face)
		}
	}
	return out, nil
}

func (r *fakeFaceRepo) DeleteFace(id int64) error {
	if _, ok := r.faces[id]; !ok {
		return repository.ErrFaceNotFound
	}
	delete(r.faces, id)
	return nil
}

func (r *fakeFaceRepo) UpdateFaceVerification(id int64, status string, livenessScore, matchScore *float64) error {
	face, ok := r.faces[id]
	if !ok {
		return repository.ErrFaceNotFound
	}
	face.Status = status
	if livenessScore != nil {
		face.LivenessScore = livenessScore
	}
	if matchScore != nil {
		face.MatchScore = matchScore
	}
	return nil
}

// fakeStorage records uploads so tests can assert the gateway was or was not
// touched.
type fakeStorage struct {
	uploads   []string
	uploadErr error
}

func (s *fakeStorage) Upload(ctx context.Context, objectName string, reader io.Reader, objectSize int64, contentType string) (string, error) {
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	s.uploads = append(s.uploads, objectName)
	return "https://store.example.com/object/public/kyc/" + objectName, nil
}

type fakePublisher struct {
	events     []event.KYCEvent
	publishErr error
}

func (p *fakePublisher) PublishEvent(ctx context.Context, ev event.KYCEvent) error {
	if p.publishErr != nil {
		return p.publishErr
	}
	p.events = append(p.events, ev)
	return nil
}

var errStorageDown = errors.New("storage write failed")
