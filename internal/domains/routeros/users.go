package routeros

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/rickicode/mikrotik-billing/internal/constants"
	"github.com/rickicode/mikrotik-billing/internal/domains/comment"
	"github.com/rickicode/mikrotik-billing/internal/entities"
	"github.com/rickicode/mikrotik-billing/internal/errs"
)

const defaultPPPoEService = "pppoe"

func (s *Service) GetHotspotUsers(ctx context.Context, opts ...ExecOption) (users entities.HotspotUsers, err error) {
	reply, err := s.query(ctx, entities.NewCommand(constants.PathHotspotUser+"/print"), opts...)
	if err != nil {
		return users, fmt.Errorf("GetHotspotUsers: %w", err)
	}

	return entities.ParseHotspotUsers(reply.Rows), nil
}

func (s *Service) GetHotspotActive(ctx context.Context, opts ...ExecOption) (sessions []entities.ActiveSession, err error) {
	reply, err := s.query(ctx, entities.NewCommand(constants.PathHotspotActive+"/print"), opts...)
	if err != nil {
		return sessions, fmt.Errorf("GetHotspotActive: %w", err)
	}

	return entities.ParseActiveSessions(reply.Rows), nil
}

func (s *Service) GetPPPoESecrets(ctx context.Context, opts ...ExecOption) (secrets entities.PPPoESecrets, err error) {
	reply, err := s.query(ctx, entities.NewCommand(constants.PathPPPSecret+"/print"), opts...)
	if err != nil {
		return secrets, fmt.Errorf("GetPPPoESecrets: %w", err)
	}

	return entities.ParsePPPoESecrets(reply.Rows), nil
}

func (s *Service) GetPPPoEActive(ctx context.Context, opts ...ExecOption) (sessions []entities.PPPoESession, err error) {
	reply, err := s.query(ctx, entities.NewCommand(constants.PathPPPActive+"/print"), opts...)
	if err != nil {
		return sessions, fmt.Errorf("GetPPPoEActive: %w", err)
	}

	return entities.ParsePPPoESessions(reply.Rows), nil
}

// FindHotspotUser looks a hotspot user up by name.
func (s *Service) FindHotspotUser(ctx context.Context, name string) (user entities.HotspotUser, err error) {
	cmd := entities.NewCommand(constants.PathHotspotUser+"/print", entities.NewParam("?name", name))
	reply, err := s.lookup(ctx, cmd)
	if err != nil {
		return user, fmt.Errorf("FindHotspotUser: %w", err)
	}

	return entities.ParseHotspotUsers(reply.Rows)[0], nil
}

// FindPPPoESecret looks a PPPoE secret up by name.
func (s *Service) FindPPPoESecret(ctx context.Context, name string) (secret entities.PPPoESecret, err error) {
	cmd := entities.NewCommand(constants.PathPPPSecret+"/print", entities.NewParam("?name", name))
	reply, err := s.lookup(ctx, cmd)
	if err != nil {
		return secret, fmt.Errorf("FindPPPoESecret: %w", err)
	}

	return entities.ParsePPPoESecrets(reply.Rows)[0], nil
}

// CreateVoucherUser adds a hotspot user carrying the encoded voucher comment.
// While the device is offline the returned id is synthetic.
func (s *Service) CreateVoucherUser(ctx context.Context, user entities.NewVoucherUser) (id string, err error) {
	if err = s.validate.Struct(user); err != nil {
		return id, fmt.Errorf("CreateVoucherUser: %w: %w", errs.ErrValidation, err)
	}

	params := []entities.Param{
		entities.NewParam("name", user.Code),
		entities.NewParam("password", user.Password),
		entities.NewParam("profile", user.Profile),
		entities.NewParam("comment", comment.FormatVoucherComment(user.PriceSell, user.FirstLogin, user.ValidUntil)),
	}
	if !lo.IsEmpty(user.LimitUptime) {
		params = append(params, entities.NewParam("limit-uptime", user.LimitUptime))
	}

	reply, err := s.write(ctx, entities.NewCommand(constants.PathHotspotUser+"/add", params...))
	if err != nil {
		return id, fmt.Errorf("CreateVoucherUser: %w", err)
	}

	return reply.Ret, nil
}

// CreatePPPoESecret adds a PPPoE secret carrying the subscription metadata.
func (s *Service) CreatePPPoESecret(ctx context.Context, secret entities.NewPPPoESecret) (id string, err error) {
	if err = s.validate.Struct(secret); err != nil {
		return id, fmt.Errorf("CreatePPPoESecret: %w: %w", errs.ErrValidation, err)
	}

	service := lo.Ternary(lo.IsEmpty(secret.Service), defaultPPPoEService, secret.Service)
	metadata := comment.FormatPPPoEComment(entities.PPPoEComment{
		CustomerID:     secret.CustomerID,
		SubscriptionID: secret.SubscriptionID,
		CreatedAt:      secret.CreatedAt,
	})

	reply, err := s.write(ctx, entities.NewCommand(constants.PathPPPSecret+"/add",
		entities.NewParam("name", secret.Username),
		entities.NewParam("password", secret.Password),
		entities.NewParam("profile", secret.Profile),
		entities.NewParam("service", service),
		entities.NewParam("comment", metadata),
	))
	if err != nil {
		return id, fmt.Errorf("CreatePPPoESecret: %w", err)
	}

	return reply.Ret, nil
}

// UpdateHotspotUser changes the set fields of a hotspot user. A voucher comment is rewritten in full.
func (s *Service) UpdateHotspotUser(ctx context.Context, id string, update entities.HotspotUserUpdate) (err error) {
	if lo.IsEmpty(id) {
		return fmt.Errorf("UpdateHotspotUser: %w: empty id", errs.ErrValidation)
	}

	if update.IsEmpty() {
		return nil
	}

	params := append([]entities.Param{entities.NewParam(".id", id)}, update.Params()...)
	if update.Comment != nil {
		params = append(params, entities.NewParam("comment", comment.FormatVoucher(*update.Comment)))
	}

	if _, err = s.write(ctx, entities.NewCommand(constants.PathHotspotUser+"/set", params...)); err != nil {
		return fmt.Errorf("UpdateHotspotUser: %w", err)
	}

	return nil
}

func (s *Service) SetHotspotUserDisabled(ctx context.Context, id string, disabled bool) (err error) {
	if err = s.UpdateHotspotUser(ctx, id, entities.HotspotUserUpdate{Disabled: &disabled}); err != nil {
		return fmt.Errorf("SetHotspotUserDisabled: %w", err)
	}

	return nil
}

func (s *Service) DeleteHotspotUser(ctx context.Context, id string) (err error) {
	if err = s.remove(ctx, constants.PathHotspotUser, id); err != nil {
		return fmt.Errorf("DeleteHotspotUser: %w", err)
	}

	return nil
}

func (s *Service) SetPPPoESecretDisabled(ctx context.Context, id string, disabled bool) (err error) {
	if lo.IsEmpty(id) {
		return fmt.Errorf("SetPPPoESecretDisabled: %w: empty id", errs.ErrValidation)
	}

	cmd := entities.NewCommand(constants.PathPPPSecret+"/set",
		entities.NewParam(".id", id),
		entities.NewParam("disabled", entities.FormatBool(disabled)),
	)
	if _, err = s.write(ctx, cmd); err != nil {
		return fmt.Errorf("SetPPPoESecretDisabled: %w", err)
	}

	return nil
}

func (s *Service) DeletePPPoESecret(ctx context.Context, id string) (err error) {
	if err = s.remove(ctx, constants.PathPPPSecret, id); err != nil {
		return fmt.Errorf("DeletePPPoESecret: %w", err)
	}

	return nil
}

func (s *Service) remove(ctx context.Context, family, id string) (err error) {
	if lo.IsEmpty(id) {
		return fmt.Errorf("%w: empty id", errs.ErrValidation)
	}

	_, err = s.write(ctx, entities.NewCommand(family+"/remove", entities.NewParam(".id", id)))
	return err
}

// query returns the device rejection of a read, other failures give empty rows.
func (s *Service) query(ctx context.Context, cmd entities.Command, opts ...ExecOption) (reply entities.Reply, err error) {
	if reply, err = s.Execute(ctx, cmd, opts...); err != nil {
		return reply, err
	}

	if errors.Is(reply.Cause, errs.ErrCommand) {
		return reply, reply.Cause
	}

	return reply, nil
}

// write returns the device rejection of a write, offline writes succeed.
func (s *Service) write(ctx context.Context, cmd entities.Command) (reply entities.Reply, err error) {
	return s.query(ctx, cmd)
}

// lookup expects at least one row. A degraded reply returns its cause.
func (s *Service) lookup(ctx context.Context, cmd entities.Command) (reply entities.Reply, err error) {
	if reply, err = s.query(ctx, cmd); err != nil {
		return reply, err
	}

	if reply.Degraded {
		return reply, reply.Cause
	}

	if len(reply.Rows) == 0 {
		return reply, errs.ErrUserNotFound
	}

	return reply, nil
}
