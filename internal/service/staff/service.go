package staff

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gymrepublic/gym-console/internal/domain/auth"
	"github.com/gymrepublic/gym-console/internal/domain/notification"
	"github.com/gymrepublic/gym-console/internal/domain/staff"
	"github.com/gymrepublic/gym-console/internal/domain/upstream"
	"github.com/gymrepublic/gym-console/internal/pkg/validator"
)

type StaffServiceImpl struct {
	staffRepo staff.StaffRepository
	notifier  notification.Notifier
}

func NewStaffService(staffRepo staff.StaffRepository, notifier notification.Notifier) staff.StaffService {
	return &StaffServiceImpl{
		staffRepo: staffRepo,
		notifier:  notifier,
	}
}

// List implements staff.StaffService.
func (s *StaffServiceImpl) List(ctx context.Context, sess auth.Session, search string) ([]staff.StaffResponse, error) {
	list, err := s.staffRepo.ListStaff(ctx, sess, search)
	if err != nil {
		slog.Error("failed to list staff", "error", err)
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	resp := make([]staff.StaffResponse, 0, len(list))
	for _, st := range list {
		resp = append(resp, staff.ToStaffResponse(st))
	}
	return resp, nil
}

// Positions implements staff.StaffService.
func (s *StaffServiceImpl) Positions(ctx context.Context, sess auth.Session) ([]staff.PositionResponse, error) {
	positions, err := s.staffRepo.ListPositions(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}

	resp := make([]staff.PositionResponse, 0, len(positions))
	for _, p := range positions {
		resp = append(resp, staff.PositionResponse{ID: p.ID, Name: p.Name})
	}
	return resp, nil
}

// Update implements staff.StaffService.
func (s *StaffServiceImpl) Update(ctx context.Context, sess auth.Session, id string, req staff.UpdateStaffRequest) error {
	if _, ok := validator.IsValidID(id); !ok {
		return staff.ErrStaffNotFound
	}
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.staffRepo.UpdateStaff(ctx, sess, id, req); err != nil {
		s.notifier.Notify(ctx, sess.UserID, notification.SeverityError, "Failed to update staff")
		if errors.Is(err, upstream.ErrNotFound) {
			return staff.ErrStaffNotFound
		}
		return fmt.Errorf("failed to update staff: %w", err)
	}

	s.notifier.Notify(ctx, sess.UserID, notification.SeveritySuccess, "Staff updated successfully")
	return nil
}

// Archive implements staff.StaffService.
func (s *StaffServiceImpl) Archive(ctx context.Context, sess auth.Session, id string) error {
	if _, ok := validator.IsValidID(id); !ok {
		return staff.ErrStaffNotFound
	}

	if err := s.staffRepo.ArchiveStaff(ctx, sess, id); err != nil {
		s.notifier.Notify(ctx, sess.UserID, notification.SeverityError, "Failed to archive staff")
		if errors.Is(err, upstream.ErrNotFound) {
			return staff.ErrStaffNotFound
		}
		return fmt.Errorf("failed to archive staff: %w", err)
	}

	s.notifier.Notify(ctx, sess.UserID, notification.SeveritySuccess, "Staff archived successfully")
	return nil
}
