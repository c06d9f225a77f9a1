package device

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/rickicode/mikrotik-billing/internal/domains/routeros"
	"github.com/rickicode/mikrotik-billing/internal/entities"
	"github.com/rickicode/mikrotik-billing/internal/errs"
	"github.com/rickicode/mikrotik-billing/internal/mq"
	"github.com/rickicode/mikrotik-billing/internal/objects/dto"
)

const (
	requestTimeout = 30 * time.Second
	syncTimeout    = 5 * time.Minute
)

type (
	IDeviceClient interface {
		Execute(ctx context.Context, cmd entities.Command, opts ...routeros.ExecOption) (entities.Reply, error)
		ExecuteBatch(ctx context.Context, cmds []entities.Command, opts ...routeros.ExecOption) ([]entities.BatchResult, error)
		ConnectionInfo() entities.ConnectionInfo
		HealthCheck(ctx context.Context) (status entities.HealthStatus, err error)
		ReloadConfig(ctx context.Context) (info entities.ConnectionInfo, err error)
		CreateVoucherUser(ctx context.Context, user entities.NewVoucherUser) (id string, err error)
		FindHotspotUser(ctx context.Context, name string) (user entities.HotspotUser, err error)
		UpdateHotspotUser(ctx context.Context, id string, update entities.HotspotUserUpdate) (err error)
		CreatePPPoESecret(ctx context.Context, secret entities.NewPPPoESecret) (id string, err error)
		FindPPPoESecret(ctx context.Context, name string) (secret entities.PPPoESecret, err error)
		DeletePPPoESecret(ctx context.Context, id string) (err error)
	}

	ISyncService interface {
		SyncUserData(ctx context.Context) (report entities.SyncReport, err error)
	}

	IBillingStore interface {
		CreateVoucher(ctx context.Context, voucher entities.Voucher) (err error)
		CreatePPPoEUser(ctx context.Context, user entities.PPPoEUser) (err error)
		UpdatePPPoEStatus(ctx context.Context, username string, status entities.SubscriptionStatus) (err error)
	}

	MQHandler struct {
		client IDeviceClient
		sync   ISyncService
		store  IBillingStore
		now    func() time.Time

		validate *validator.Validate
	}
)

func NewMQHandler(client IDeviceClient, sync ISyncService, store IBillingStore) *MQHandler {
	return &MQHandler{
		client: client,
		sync:   sync,
		store:  store,
		now:    time.Now,

		validate: validator.New(),
	}
}

// Execute runs a single device command.
func (h *MQHandler) Execute(message *nats.Msg) (resp any) {
	var request dto.CommandRequest
	if err := h.decode(message, &request); err != nil {
		return mq.NewBadRequestResponse(err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	reply, err := h.client.Execute(ctx, request.ToEntity(), execOptions(request.NoCache)...)
	if err != nil {
		return errorResponse(err)
	}

	return struct {
		mq.Response
		Reply dto.Reply `json:"reply"`
	}{
		Response: mq.NewOkResponse(),
		Reply:    dto.NewReply(reply),
	}
}

// ExecuteBatch runs commands in order. Failed commands are reported per item.
func (h *MQHandler) ExecuteBatch(message *nats.Msg) (resp any) {
	var request dto.BatchRequest
	if err := h.decode(message, &request); err != nil {
		return mq.NewBadRequestResponse(err.Error())
	}

	cmds := make([]entities.Command, 0, len(request.Commands))
	for _, cmd := range request.Commands {
		cmds = append(cmds, cmd.ToEntity())
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	results, err := h.client.ExecuteBatch(ctx, cmds, execOptions(request.NoCache)...)
	if err != nil {
		return errorResponse(err)
	}

	return struct {
		mq.Response
		Results []dto.BatchResult `json:"results"`
	}{
		Response: mq.NewOkResponse(),
		Results:  dto.NewBatchResults(results),
	}
}

// Info returns the connection snapshot.
func (h *MQHandler) Info(_ *nats.Msg) (resp any) {
	return struct {
		mq.Response
		Info entities.ConnectionInfo `json:"info"`
	}{
		Response: mq.NewOkResponse(),
		Info:     h.client.ConnectionInfo(),
	}
}

// Health probes the device and reconnects an offline one.
func (h *MQHandler) Health(_ *nats.Msg) (resp any) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	status, err := h.client.HealthCheck(ctx)
	if err != nil {
		return errorResponse(err)
	}

	return struct {
		mq.Response
		Health entities.HealthStatus `json:"health"`
	}{
		Response: mq.NewOkResponse(),
		Health:   status,
	}
}

// Reload re-reads the device settings and reconnects when the target changed.
func (h *MQHandler) Reload(_ *nats.Msg) (resp any) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	info, err := h.client.ReloadConfig(ctx)
	if err != nil {
		return errorResponse(err)
	}

	return struct {
		mq.Response
		Info entities.ConnectionInfo `json:"info"`
	}{
		Response: mq.NewOkResponse(),
		Info:     info,
	}
}

// Sync runs a reconciliation pass.
func (h *MQHandler) Sync(_ *nats.Msg) (resp any) {
	ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
	defer cancel()

	report, err := h.sync.SyncUserData(ctx)
	if err != nil {
		return errorResponse(err)
	}

	return struct {
		mq.Response
		Report entities.SyncReport `json:"report"`
	}{
		Response: mq.NewOkResponse(),
		Report:   report,
	}
}

// CreateVoucher stores a voucher and provisions its hotspot user. The stored voucher
// is kept when the device write fails, reconciliation provisions it later.
func (h *MQHandler) CreateVoucher(message *nats.Msg) (resp any) {
	var request dto.CreateVoucherRequest
	if err := h.decode(message, &request); err != nil {
		return mq.NewBadRequestResponse(err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := h.store.CreateVoucher(ctx, request.ToVoucher()); err != nil {
		return mq.NewInternalErrorResponse(err.Error())
	}

	id, err := h.client.CreateVoucherUser(ctx, request.ToDeviceUser())
	if err != nil {
		log.Warn().Err(err).Str("code", request.Code).Msg("CreateVoucher: device user not created")
		return errorResponse(err)
	}

	return struct {
		mq.Response
		ID string `json:"id"`
	}{
		Response: mq.NewOkResponse(),
		ID:       id,
	}
}

// UpdateHotspotUser changes a hotspot user found by name.
func (h *MQHandler) UpdateHotspotUser(message *nats.Msg) (resp any) {
	var request dto.UpdateHotspotUserRequest
	if err := h.decode(message, &request); err != nil {
		return mq.NewBadRequestResponse(err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	user, err := h.client.FindHotspotUser(ctx, request.Name)
	if err != nil {
		return errorResponse(err)
	}

	if err = h.client.UpdateHotspotUser(ctx, user.ID, request.ToEntity()); err != nil {
		return errorResponse(err)
	}

	return mq.NewOkResponse()
}

// CreatePPPoE stores a subscription and provisions its PPPoE secret.
func (h *MQHandler) CreatePPPoE(message *nats.Msg) (resp any) {
	var request dto.CreatePPPoERequest
	if err := h.decode(message, &request); err != nil {
		return mq.NewBadRequestResponse(err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	createdAt := h.now()
	if err := h.store.CreatePPPoEUser(ctx, request.ToUser(createdAt)); err != nil {
		return mq.NewInternalErrorResponse(err.Error())
	}

	id, err := h.client.CreatePPPoESecret(ctx, request.ToSecret(createdAt))
	if err != nil {
		log.Warn().Err(err).Str("username", request.Username).Msg("CreatePPPoE: device secret not created")
		return errorResponse(err)
	}

	return struct {
		mq.Response
		ID string `json:"id"`
	}{
		Response: mq.NewOkResponse(),
		ID:       id,
	}
}

// DeletePPPoE disables the subscription and removes its secret. The subscription is
// disabled first so reconciliation does not restore the secret.
func (h *MQHandler) DeletePPPoE(message *nats.Msg) (resp any) {
	var request dto.DeletePPPoERequest
	if err := h.decode(message, &request); err != nil {
		return mq.NewBadRequestResponse(err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := h.store.UpdatePPPoEStatus(ctx, request.Username, entities.SubscriptionStatusDisabled); err != nil {
		return mq.NewInternalErrorResponse(err.Error())
	}

	secret, err := h.client.FindPPPoESecret(ctx, request.Username)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return mq.NewOkResponse()
		}

		return errorResponse(err)
	}

	if err = h.client.DeletePPPoESecret(ctx, secret.ID); err != nil {
		return errorResponse(err)
	}

	return mq.NewOkResponse()
}

func (h *MQHandler) decode(message *nats.Msg, request any) (err error) {
	if err = json.Unmarshal(message.Data, request); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	if err = h.validate.Struct(request); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	return nil
}

func execOptions(noCache bool) (opts []routeros.ExecOption) {
	if noCache {
		opts = append(opts, routeros.WithoutCache())
	}

	return opts
}

func errorResponse(err error) mq.Response {
	switch {
	case errors.Is(err, errs.ErrValidation), errors.Is(err, errs.ErrUserNotFound):
		return mq.NewBadRequestResponse(err.Error())
	default:
		return mq.NewInternalErrorResponse(err.Error())
	}
}
