package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/udalba/campusmarket/internal/common"
	"github.com/udalba/campusmarket/internal/cryptox"
)

// Service is the credential store: registration, authentication,
// security-question recovery, and profile edits. Identity is always passed
// in explicitly; the service holds no session state.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates an account. The password and, when given, the
// case/whitespace-normalized security answer are stored as salted argon2id
// digests only. A taken email yields common.ErrDuplicateEmail and leaves the
// existing account untouched. Email-domain validation is the caller's job.
func (s *Service) Register(ctx context.Context, email, name, rawPassword, contact, program string, question, answer *string) (*Account, error) {
	passwordHash, err := cryptox.HashSecret(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	account := &Account{
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Contact:      contact,
		Program:      program,
	}

	if question != nil && answer != nil {
		answerHash, err := cryptox.HashSecret(cryptox.NormalizeAnswer(*answer))
		if err != nil {
			return nil, fmt.Errorf("hashing security answer: %w", err)
		}
		account.SecurityQuestion = question
		account.AnswerHash = &answerHash
	}

	if err := s.repo.Create(ctx, account); err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return nil, common.ErrDuplicateEmail
		}
		return nil, common.WrapStorage(err)
	}

	return account, nil
}

// Authenticate verifies the email/password pair. Unknown email and wrong
// password both surface as common.ErrInvalidCredentials so callers cannot
// probe which emails are registered.
func (s *Service) Authenticate(ctx context.Context, email, rawPassword string) (*Account, error) {
	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.WrapStorage(err)
	}

	ok, err := cryptox.VerifySecret(rawPassword, account.PasswordHash)
	if err != nil {
		return nil, common.WrapStorage(err)
	}
	if !ok {
		return nil, common.ErrInvalidCredentials
	}

	return account, nil
}

// BeginRecovery returns the account's security question. Accounts without a
// question on file cannot be recovered this way and report common.ErrNotFound.
func (s *Service) BeginRecovery(ctx context.Context, email string) (string, error) {
	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrNotFound
		}
		return "", common.WrapStorage(err)
	}

	if account.SecurityQuestion == nil {
		return "", common.ErrNotFound
	}

	return *account.SecurityQuestion, nil
}

// CompleteRecovery sets a new password after checking that both new-password
// entries match and are non-empty and that the normalized answer matches the
// stored digest. Nothing is committed unless every check passes.
func (s *Service) CompleteRecovery(ctx context.Context, email, rawAnswer, newPassword, newPasswordConfirm string) error {
	if newPassword == "" || newPassword != newPasswordConfirm {
		return common.ErrConfirmMismatch
	}

	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return common.WrapStorage(err)
	}

	if account.AnswerHash == nil {
		return common.ErrNotFound
	}

	ok, err := cryptox.VerifySecret(cryptox.NormalizeAnswer(rawAnswer), *account.AnswerHash)
	if err != nil {
		return common.WrapStorage(err)
	}
	if !ok {
		return common.ErrAnswerMismatch
	}

	newHash, err := cryptox.HashSecret(newPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	if err := s.repo.UpdatePasswordHash(ctx, email, newHash); err != nil {
		return common.WrapStorage(err)
	}

	return nil
}

// UpdateProfile edits name, contact handle, and program. The session layer
// has already authenticated the caller; no password re-check here.
func (s *Service) UpdateProfile(ctx context.Context, email, name, contact, program string) error {
	if err := s.repo.UpdateProfile(ctx, email, name, contact, program); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return common.WrapStorage(err)
	}
	return nil
}

// Get loads an account for profile rendering.
func (s *Service) Get(ctx context.Context, email string) (*Account, error) {
	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.WrapStorage(err)
	}
	return account, nil
}
