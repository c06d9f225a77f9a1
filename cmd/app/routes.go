package main

import (
	"github.com/rickicode/mikrotik-billing/infrastructure"
	"github.com/rickicode/mikrotik-billing/internal/constants"
	"github.com/rickicode/mikrotik-billing/internal/mq"
)

func getMQRoutes(injector infrastructure.IInjector) map[string]mq.Handler {
	deviceMQHandler := injector.InjectDeviceMQHandler()

	return map[string]mq.Handler{
		constants.MQRouterExecute:           deviceMQHandler.Execute,
		constants.MQRouterExecuteBatch:      deviceMQHandler.ExecuteBatch,
		constants.MQRouterInfo:              deviceMQHandler.Info,
		constants.MQRouterHealth:            deviceMQHandler.Health,
		constants.MQRouterReload:            deviceMQHandler.Reload,
		constants.MQRouterSync:              deviceMQHandler.Sync,
		constants.MQRouterCreateVoucher:     deviceMQHandler.CreateVoucher,
		constants.MQRouterUpdateHotspotUser: deviceMQHandler.UpdateHotspotUser,
		constants.MQRouterCreatePPPoE:       deviceMQHandler.CreatePPPoE,
		constants.MQRouterDeletePPPoE:       deviceMQHandler.DeletePPPoE,
	}
}
