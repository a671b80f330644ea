package services

import (
	crand "crypto/rand"
	"database/sql"
	"fmt"
	"log"
	"math/big"
	"time"

	"brainhealth/internal/models"
	"brainhealth/internal/repositories"
)

// Код живёт 15 минут; протухшие строки добираются следующим Upsert той же пары.
const verificationCodeTTL = 15 * time.Minute

type LinkingService struct {
	db         *sql.DB
	patients   repositories.PatientRepository
	caregivers repositories.CaregiverRepository
	pending    repositories.PendingVerificationRepository
	emails     EmailService
}

func NewLinkingService(
	db *sql.DB,
	patients repositories.PatientRepository,
	caregivers repositories.CaregiverRepository,
	pending repositories.PendingVerificationRepository,
	emails EmailService,
) *LinkingService {
	return &LinkingService{
		db:         db,
		patients:   patients,
		caregivers: caregivers,
		pending:    pending,
		emails:     emails,
	}
}

// generateCode — равномерный 6-значный код, ведущие нули сохраняем.
func generateCode() (string, error) {
	n, err := crand.Int(crand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// RequestLink — шаг 1: заявка опекуна, код уходит пациенту на почту.
// Повторная заявка до подтверждения перетирает прежний код.
func (s *LinkingService) RequestLink(caregiver *models.Caregiver, caregiverName, patientEmail string) error {
	patient, err := s.patients.GetByUserEmail(patientEmail)
	if err != nil {
		return fmt.Errorf("patient lookup: %w", err)
	}
	if patient == nil {
		return ErrNotFound
	}

	linked, err := s.caregivers.IsLinked(caregiver.ID, patient.ID)
	if err != nil {
		return err
	}
	if linked {
		return ErrAlreadyLinked
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}
	if _, err := s.pending.Upsert(caregiver.ID, patient.ID, code); err != nil {
		return err
	}
	log.Printf("[linking][request] caregiver_id=%d patient_id=%d code sent", caregiver.ID, patient.ID)

	if s.emails != nil {
		if err := s.emails.SendVerificationCodeEmail(patientEmail, caregiverName, code); err != nil {
			// заявка создана, письмо можно перезапросить повторной заявкой
			log.Printf("[linking][request] send code email to %s failed: %v", patientEmail, err)
		}
	}
	return nil
}

// ConfirmLink — шаг 2: точное совпадение (опекун, пациент, код) не старше TTL.
// «Нет заявки» и «неверный код» наружу не различаем — оба дают ErrInvalidCode.
func (s *LinkingService) ConfirmLink(caregiver *models.Caregiver, patientEmail, code string) error {
	patient, err := s.patients.GetByUserEmail(patientEmail)
	if err != nil {
		return fmt.Errorf("patient lookup: %w", err)
	}
	if patient == nil {
		return ErrInvalidCode
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("confirm begin: %w", err)
	}
	defer tx.Rollback()

	// одноразовое списание кода и привязка — в одной транзакции
	ok, err := s.pending.ConsumeTx(tx, caregiver.ID, patient.ID, code, verificationCodeTTL)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidCode
	}
	if err := s.caregivers.LinkTx(tx, caregiver.ID, patient.ID); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("confirm commit: %w", err)
	}
	log.Printf("[linking][confirm] caregiver_id=%d patient_id=%d linked", caregiver.ID, patient.ID)
	return nil
}

func (s *LinkingService) ListPatients(caregiverID int64) ([]*models.Patient, error) {
	return s.caregivers.ListPatients(caregiverID)
}
