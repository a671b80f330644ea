package services

import (
	"database/sql"
	"time"

	"brainhealth/internal/models"
	"brainhealth/internal/repositories"
)

// Func-field моки: в тесте заполняем только то, что реально вызывается.

type mockUserRepo struct {
	CreateFn             func(u *models.User) error
	GetByIDFn            func(id int) (*models.User, error)
	GetByEmailFn         func(email string) (*models.User, error)
	GetByUsernameFn      func(username string) (*models.User, error)
	UpdateRefreshFn      func(userID int, token string, expiresAt time.Time) error
	RotateRefreshFn      func(oldToken, newToken string, newExpiresAt time.Time) (*models.User, error)
	ClearRefreshFn       func(userID int) error
	GetByRefreshTokenFn  func(token string) (*models.User, error)
	UpdateTelegramLinkFn func(userID int, chatID int64, enable bool) error
}

func (m *mockUserRepo) Create(u *models.User) error { return m.CreateFn(u) }
func (m *mockUserRepo) GetByID(id int) (*models.User, error) {
	return m.GetByIDFn(id)
}
func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) {
	return m.GetByEmailFn(email)
}
func (m *mockUserRepo) GetByUsername(username string) (*models.User, error) {
	return m.GetByUsernameFn(username)
}
func (m *mockUserRepo) UpdateRefresh(userID int, token string, expiresAt time.Time) error {
	return m.UpdateRefreshFn(userID, token, expiresAt)
}
func (m *mockUserRepo) RotateRefresh(oldToken, newToken string, newExpiresAt time.Time) (*models.User, error) {
	return m.RotateRefreshFn(oldToken, newToken, newExpiresAt)
}
func (m *mockUserRepo) ClearRefresh(userID int) error { return m.ClearRefreshFn(userID) }
func (m *mockUserRepo) GetByRefreshToken(token string) (*models.User, error) {
	return m.GetByRefreshTokenFn(token)
}
func (m *mockUserRepo) UpdateTelegramLink(userID int, chatID int64, enable bool) error {
	return m.UpdateTelegramLinkFn(userID, chatID, enable)
}

type mockPatientRepo struct {
	CreateFn         func(p *models.Patient) error
	GetByIDFn        func(id int64) (*models.Patient, error)
	GetByUserIDFn    func(userID int) (*models.Patient, error)
	GetByUserEmailFn func(email string) (*models.Patient, error)
	LockTxFn         func(tx *sql.Tx, id int64) error
}

func (m *mockPatientRepo) Create(p *models.Patient) error { return m.CreateFn(p) }
func (m *mockPatientRepo) GetByID(id int64) (*models.Patient, error) {
	return m.GetByIDFn(id)
}
func (m *mockPatientRepo) GetByUserID(userID int) (*models.Patient, error) {
	return m.GetByUserIDFn(userID)
}
func (m *mockPatientRepo) GetByUserEmail(email string) (*models.Patient, error) {
	return m.GetByUserEmailFn(email)
}
func (m *mockPatientRepo) LockTx(tx *sql.Tx, id int64) error { return m.LockTxFn(tx, id) }

type mockCaregiverRepo struct {
	CreateFn        func(cg *models.Caregiver) error
	GetByUserIDFn   func(userID int) (*models.Caregiver, error)
	IsLinkedFn      func(caregiverID, patientID int64) (bool, error)
	LinkTxFn        func(tx *sql.Tx, caregiverID, patientID int64) error
	ListPatientsFn  func(caregiverID int64) ([]*models.Patient, error)
	ListByPatientFn func(patientID int64) ([]*models.Caregiver, error)
}

func (m *mockCaregiverRepo) Create(cg *models.Caregiver) error { return m.CreateFn(cg) }
func (m *mockCaregiverRepo) GetByUserID(userID int) (*models.Caregiver, error) {
	return m.GetByUserIDFn(userID)
}
func (m *mockCaregiverRepo) IsLinked(caregiverID, patientID int64) (bool, error) {
	return m.IsLinkedFn(caregiverID, patientID)
}
func (m *mockCaregiverRepo) LinkTx(tx *sql.Tx, caregiverID, patientID int64) error {
	return m.LinkTxFn(tx, caregiverID, patientID)
}
func (m *mockCaregiverRepo) ListPatients(caregiverID int64) ([]*models.Patient, error) {
	return m.ListPatientsFn(caregiverID)
}
func (m *mockCaregiverRepo) ListByPatient(patientID int64) ([]*models.Caregiver, error) {
	return m.ListByPatientFn(patientID)
}

type mockLifestyleRepo struct {
	CreateFn            func(e *models.LifestyleEntry) error
	UpdateFn            func(e *models.LifestyleEntry) error
	GetByIDFn           func(id int64) (*models.LifestyleEntry, error)
	GetLatestByUserFn   func(userID int) (*models.LifestyleEntry, error)
	GetLatestByUserTxFn func(tx *sql.Tx, userID int) (*models.LifestyleEntry, error)
	ListByUserFn        func(userID, limit, offset int) ([]*models.LifestyleEntry, error)
}

func (m *mockLifestyleRepo) Create(e *models.LifestyleEntry) error { return m.CreateFn(e) }
func (m *mockLifestyleRepo) Update(e *models.LifestyleEntry) error { return m.UpdateFn(e) }
func (m *mockLifestyleRepo) GetByID(id int64) (*models.LifestyleEntry, error) {
	return m.GetByIDFn(id)
}
func (m *mockLifestyleRepo) GetLatestByUser(userID int) (*models.LifestyleEntry, error) {
	return m.GetLatestByUserFn(userID)
}
func (m *mockLifestyleRepo) GetLatestByUserTx(tx *sql.Tx, userID int) (*models.LifestyleEntry, error) {
	return m.GetLatestByUserTxFn(tx, userID)
}
func (m *mockLifestyleRepo) ListByUser(userID, limit, offset int) ([]*models.LifestyleEntry, error) {
	return m.ListByUserFn(userID, limit, offset)
}

type mockResultRepo struct {
	CreateFn           func(res *models.CognitiveTestResult) error
	ListByPatientFn    func(patientID int64, limit, offset int) ([]*models.CognitiveTestResult, error)
	GetLatestScoreTxFn func(tx *sql.Tx, patientID int64) (float64, bool, error)
	GetStatsFn         func(patientID int64) (*repositories.CognitiveStats, error)
}

func (m *mockResultRepo) Create(res *models.CognitiveTestResult) error { return m.CreateFn(res) }
func (m *mockResultRepo) ListByPatient(patientID int64, limit, offset int) ([]*models.CognitiveTestResult, error) {
	return m.ListByPatientFn(patientID, limit, offset)
}
func (m *mockResultRepo) GetLatestScoreTx(tx *sql.Tx, patientID int64) (float64, bool, error) {
	return m.GetLatestScoreTxFn(tx, patientID)
}
func (m *mockResultRepo) GetStats(patientID int64) (*repositories.CognitiveStats, error) {
	return m.GetStatsFn(patientID)
}

type mockAssessmentRepo struct {
	UpsertTxFn     func(tx *sql.Tx, a *models.BrainHealthAssessment) error
	GetByPatientFn func(patientID int64) (*models.BrainHealthAssessment, error)
}

func (m *mockAssessmentRepo) UpsertTx(tx *sql.Tx, a *models.BrainHealthAssessment) error {
	return m.UpsertTxFn(tx, a)
}
func (m *mockAssessmentRepo) GetByPatient(patientID int64) (*models.BrainHealthAssessment, error) {
	return m.GetByPatientFn(patientID)
}

type mockRecommendationRepo struct {
	DeleteIncompleteTxFn func(tx *sql.Tx, patientID int64) error
	BulkInsertTxFn       func(tx *sql.Tx, recs []*models.Recommendation) error
	ListByPatientFn      func(patientID int64, onlyActive bool) ([]*models.Recommendation, error)
	MarkCompletedFn      func(id, patientID int64) error
}

func (m *mockRecommendationRepo) DeleteIncompleteTx(tx *sql.Tx, patientID int64) error {
	return m.DeleteIncompleteTxFn(tx, patientID)
}
func (m *mockRecommendationRepo) BulkInsertTx(tx *sql.Tx, recs []*models.Recommendation) error {
	return m.BulkInsertTxFn(tx, recs)
}
func (m *mockRecommendationRepo) ListByPatient(patientID int64, onlyActive bool) ([]*models.Recommendation, error) {
	return m.ListByPatientFn(patientID, onlyActive)
}
func (m *mockRecommendationRepo) MarkCompleted(id, patientID int64) error {
	return m.MarkCompletedFn(id, patientID)
}

type mockPendingRepo struct {
	UpsertFn    func(caregiverID, patientID int64, code string) (*models.PendingVerification, error)
	ConsumeTxFn func(tx *sql.Tx, caregiverID, patientID int64, code string, ttl time.Duration) (bool, error)
}

func (m *mockPendingRepo) Upsert(caregiverID, patientID int64, code string) (*models.PendingVerification, error) {
	return m.UpsertFn(caregiverID, patientID, code)
}
func (m *mockPendingRepo) ConsumeTx(tx *sql.Tx, caregiverID, patientID int64, code string, ttl time.Duration) (bool, error) {
	return m.ConsumeTxFn(tx, caregiverID, patientID, code, ttl)
}

type mockEmailService struct {
	WelcomeFn func(email, username string) error
	CodeFn    func(email, caregiverName, code string) error
}

func (m *mockEmailService) SendWelcomeEmail(email, username string) error {
	if m.WelcomeFn == nil {
		return nil
	}
	return m.WelcomeFn(email, username)
}

func (m *mockEmailService) SendVerificationCodeEmail(email, caregiverName, code string) error {
	if m.CodeFn == nil {
		return nil
	}
	return m.CodeFn(email, caregiverName, code)
}
