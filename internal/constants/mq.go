package constants

const (
	// in requests.
	MQRouterExecute           = "execute"
	MQRouterExecuteBatch      = "execute_batch"
	MQRouterInfo              = "info"
	MQRouterHealth            = "health"
	MQRouterReload            = "reload"
	MQRouterSync              = "sync"
	MQRouterCreateVoucher     = "voucher.create"
	MQRouterUpdateHotspotUser = "hotspot_user.update"
	MQRouterCreatePPPoE       = "pppoe.create"
	MQRouterDeletePPPoE       = "pppoe.delete"

	// out events.
	MQEventStateChanged = "events.state_changed"
	MQEventSyncFinished = "events.sync_finished"
)
