package services

import (
	"context"
	"mime/multipart"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/santanu2402/Alumni-Management-System/internal/app/models"
	"github.com/santanu2402/Alumni-Management-System/internal/pkg/apperrors"
)

// In-memory repository fakes backing the service tests.

type fakeAdminRepo struct {
	admins map[primitive.ObjectID]*models.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: map[primitive.ObjectID]*models.Admin{}}
}

func (r *fakeAdminRepo) Create(_ context.Context, admin *models.Admin) error {
	for _, a := range r.admins {
		if a.Username == admin.Username {
			return apperrors.ErrDuplicateAccount
		}
	}
	admin.ID = primitive.NewObjectID()
	r.admins[admin.ID] = admin
	return nil
}

func (r *fakeAdminRepo) GetByUsername(_ context.Context, username string) (*models.Admin, error) {
	for _, a := range r.admins {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeAdminRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Admin, error) {
	if a, ok := r.admins[id]; ok {
		return a, nil
	}
	return nil, apperrors.ErrNotFound
}

type fakeStudentRepo struct {
	students map[primitive.ObjectID]*models.Student
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: map[primitive.ObjectID]*models.Student{}}
}

func (r *fakeStudentRepo) Create(_ context.Context, student *models.Student) error {
	for _, s := range r.students {
		if s.Username == student.Username {
			return apperrors.ErrDuplicateAccount
		}
	}
	student.ID = primitive.NewObjectID()
	r.students[student.ID] = student
	return nil
}

func (r *fakeStudentRepo) GetByUsername(_ context.Context, username string) (*models.Student, error) {
	for _, s := range r.students {
		if s.Username == username {
			return s, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeStudentRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Student, error) {
	if s, ok := r.students[id]; ok {
		return s, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeStudentRepo) UpdateUsername(_ context.Context, id primitive.ObjectID, username string) error {
	s, ok := r.students[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	s.Username = username
	return nil
}

func (r *fakeStudentRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.students[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.students, id)
	return nil
}

func (r *fakeStudentRepo) List(_ context.Context) ([]models.Student, error) {
	out := []models.Student{}
	for _, s := range r.students {
		out = append(out, *s)
	}
	return out, nil
}

type fakeAlumniRepo struct {
	alumnis map[primitive.ObjectID]*models.Alumni
}

func newFakeAlumniRepo() *fakeAlumniRepo {
	return &fakeAlumniRepo{alumnis: map[primitive.ObjectID]*models.Alumni{}}
}

func (r *fakeAlumniRepo) Create(_ context.Context, alumni *models.Alumni) error {
	for _, a := range r.alumnis {
		if a.Username == alumni.Username {
			return apperrors.ErrDuplicateAccount
		}
	}
	alumni.ID = primitive.NewObjectID()
	r.alumnis[alumni.ID] = alumni
	return nil
}

func (r *fakeAlumniRepo) GetByUsername(_ context.Context, username string) (*models.Alumni, error) {
	for _, a := range r.alumnis {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeAlumniRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Alumni, error) {
	if a, ok := r.alumnis[id]; ok {
		return a, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeAlumniRepo) UpdateProfile(_ context.Context, id primitive.ObjectID, alumni *models.Alumni) error {
	existing, ok := r.alumnis[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	existing.Username = alumni.Username
	existing.WorkingStatus = alumni.WorkingStatus
	existing.Organization = alumni.Organization
	existing.Role = alumni.Role
	existing.PreviousCompany = alumni.PreviousCompany
	existing.Skills = alumni.Skills
	existing.IndustrialExperience = alumni.IndustrialExperience
	return nil
}

func (r *fakeAlumniRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.alumnis[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.alumnis, id)
	return nil
}

func (r *fakeAlumniRepo) List(_ context.Context) ([]models.Alumni, error) {
	out := []models.Alumni{}
	for _, a := range r.alumnis {
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeAlumniRepo) Search(_ context.Context, query string, excludeID primitive.ObjectID) ([]models.Alumni, error) {
	out := []models.Alumni{}
	for _, a := range r.alumnis {
		if a.ID == excludeID {
			continue
		}
		if query == "" || strings.Contains(strings.ToLower(a.Username), strings.ToLower(query)) {
			out = append(out, *a)
		}
	}
	return out, nil
}

type fakePersonRepo struct {
	people map[primitive.ObjectID]*models.Person
}

func newFakePersonRepo() *fakePersonRepo {
	return &fakePersonRepo{people: map[primitive.ObjectID]*models.Person{}}
}

func (r *fakePersonRepo) Create(_ context.Context, person *models.Person) error {
	for _, p := range r.people {
		if p.RollNo == person.RollNo || p.Email == person.Email {
			return apperrors.ErrDuplicateRecord
		}
	}
	person.ID = primitive.NewObjectID()
	r.people[person.ID] = person
	return nil
}

func (r *fakePersonRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Person, error) {
	if p, ok := r.people[id]; ok {
		return p, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakePersonRepo) FindExact(_ context.Context, name, rollNo, gender, email, passout string) (*models.Person, error) {
	for _, p := range r.people {
		if p.Name == name && p.RollNo == rollNo && p.Gender == gender && p.Email == email && p.Passout == passout {
			return p, nil
		}
	}
	return nil, apperrors.ErrUnknownPerson
}

func (r *fakePersonRepo) Search(_ context.Context, query string) ([]models.Person, error) {
	out := []models.Person{}
	for _, p := range r.people {
		if query == "" ||
			strings.Contains(strings.ToLower(p.Name), strings.ToLower(query)) ||
			strings.Contains(strings.ToLower(p.RollNo), strings.ToLower(query)) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePersonRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.people[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.people, id)
	return nil
}

func (r *fakePersonRepo) DeleteByRollNoEmail(_ context.Context, rollNo, email string) error {
	for id, p := range r.people {
		if p.RollNo == rollNo && p.Email == email {
			delete(r.people, id)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

type fakePostRepo struct {
	posts map[primitive.ObjectID]*models.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[primitive.ObjectID]*models.Post{}}
}

func (r *fakePostRepo) Create(_ context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	r.posts[post.ID] = post
	return nil
}

func (r *fakePostRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Post, error) {
	if p, ok := r.posts[id]; ok {
		return p, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakePostRepo) ListByAccess(_ context.Context, tiers ...models.AccessTier) ([]models.Post, error) {
	out := []models.Post{}
	for _, p := range r.posts {
		if len(tiers) == 0 {
			out = append(out, *p)
			continue
		}
		for _, tier := range tiers {
			if p.Access == tier {
				out = append(out, *p)
				break
			}
		}
	}
	return out, nil
}

func (r *fakePostRepo) ListByAlumni(_ context.Context, alumniID primitive.ObjectID) ([]models.Post, error) {
	out := []models.Post{}
	for _, p := range r.posts {
		if p.AlumniID == alumniID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePostRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.posts[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *fakePostRepo) DeleteByAlumni(_ context.Context, alumniID primitive.ObjectID) (int64, error) {
	var n int64
	for id, p := range r.posts {
		if p.AlumniID == alumniID {
			delete(r.posts, id)
			n++
		}
	}
	return n, nil
}

type fakeTrainingRepo struct {
	trainings map[primitive.ObjectID]*models.Training
}

func newFakeTrainingRepo() *fakeTrainingRepo {
	return &fakeTrainingRepo{trainings: map[primitive.ObjectID]*models.Training{}}
}

func (r *fakeTrainingRepo) Create(_ context.Context, training *models.Training) error {
	training.ID = primitive.NewObjectID()
	r.trainings[training.ID] = training
	return nil
}

func (r *fakeTrainingRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Training, error) {
	if tr, ok := r.trainings[id]; ok {
		return tr, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeTrainingRepo) List(_ context.Context) ([]models.Training, error) {
	out := []models.Training{}
	for _, tr := range r.trainings {
		out = append(out, *tr)
	}
	return out, nil
}

func (r *fakeTrainingRepo) ListByType(_ context.Context, trainingType models.TrainingType) ([]models.Training, error) {
	out := []models.Training{}
	for _, tr := range r.trainings {
		if tr.TrainingType == trainingType {
			out = append(out, *tr)
		}
	}
	return out, nil
}

func (r *fakeTrainingRepo) ListByAlumni(_ context.Context, alumniID primitive.ObjectID) ([]models.Training, error) {
	out := []models.Training{}
	for _, tr := range r.trainings {
		if tr.AlumniID == alumniID {
			out = append(out, *tr)
		}
	}
	return out, nil
}

func (r *fakeTrainingRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.trainings[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.trainings, id)
	return nil
}

func (r *fakeTrainingRepo) DeleteByAlumni(_ context.Context, alumniID primitive.ObjectID) (int64, error) {
	var n int64
	for id, tr := range r.trainings {
		if tr.AlumniID == alumniID {
			delete(r.trainings, id)
			n++
		}
	}
	return n, nil
}

// fakeStorage records saves and deletes without touching disk.
type fakeStorage struct {
	saved   []string
	deleted []string
	failing bool
}

func (s *fakeStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	return s.SaveFileWithPath(fileHeader, "")
}

func (s *fakeStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if s.failing {
		return "", apperrors.ErrUploadFailed
	}
	url := "/uploads/" + subPath + "/" + fileHeader.Filename
	s.saved = append(s.saved, url)
	return url, nil
}

func (s *fakeStorage) DeleteFile(fileURL string) error {
	s.deleted = append(s.deleted, fileURL)
	return nil
}
