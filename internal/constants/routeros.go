package constants

// RouterOS API paths used by the billing client.
const (
	PathIdentityPrint = "/system/identity/print"
	PathResourcePrint = "/system/resource/print"

	PathHotspotUser        = "/ip/hotspot/user"
	PathHotspotActive      = "/ip/hotspot/active"
	PathHotspotUserProfile = "/ip/hotspot/user/profile"
	PathPPPSecret          = "/ppp/secret"
	PathPPPActive          = "/ppp/active"
	PathPPPProfile         = "/ppp/profile"
)

const (
	VoucherCommentPrefix = "VOUCHER_SYSTEM"
	CommentTypePPPoE     = "pppoe"
	CommentTypeRaw       = "raw"
)
