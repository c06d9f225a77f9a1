package mq_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"

	"github.com/rickicode/mikrotik-billing/internal/errs"
	"github.com/rickicode/mikrotik-billing/internal/mq"
)

func Test_Response(t *testing.T) {
	t.Parallel()

	require.False(t, mq.NewOkResponse().IsError())
	require.NoError(t, mq.NewOkResponse().Error())

	resp := mq.NewBadRequestResponse("missing path")
	require.True(t, resp.IsError())
	require.ErrorIs(t, resp.Error(), errs.ErrAPIError)
	require.Contains(t, resp.Error().Error(), "missing path")
}

func Test_Dispatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    mq.Handler
		wantStatus int
	}{
		{
			name: "ok",
			handler: func(_ *nats.Msg) any {
				return mq.NewOkResponse()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "panic",
			handler: func(_ *nats.Msg) any {
				panic("boom")
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name: "unencodable",
			handler: func(_ *nats.Msg) any {
				return make(chan int)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := mq.Dispatch(tt.handler, &nats.Msg{Subject: "billing.router.test"})

			var resp mq.Response
			require.NoError(t, json.Unmarshal(data, &resp))
			require.Equal(t, tt.wantStatus, resp.Status)
		})
	}
}

func Test_Service_NotConnected(t *testing.T) {
	t.Parallel()

	svc := mq.NewService(nats.DefaultURL, "billing.router")
	require.Equal(t, "billing.router.sync", svc.Subject("sync"))
	require.Equal(t, "sync", mq.NewService(nats.DefaultURL, "").Subject("sync"))

	svc.RegisterHandlers(map[string]mq.Handler{
		"sync": func(_ *nats.Msg) any { return mq.NewOkResponse() },
	})

	require.ErrorIs(t, svc.ActivateHandler("sync"), mq.ErrNotConnected)
	require.ErrorIs(t, svc.Publish("billing.router.events", mq.NewOkResponse()), mq.ErrNotConnected)

	_, err := svc.Request("billing.router.sync", nil, 0)
	require.ErrorIs(t, err, mq.ErrNotConnected)

	require.NoError(t, svc.DeactivateHandler("sync"))
	require.NoError(t, svc.Close())
}
