package log

const (
	KeyAppName        = "app"
	KeyRequestID      = "requestId"
	KeyProcess        = "process"
	KeyTag            = "tag"
	KeyToken          = "token"
	KeyConfig         = "config"
	KeyRequest        = "request"
	KeyRequestBody    = "requestBody"
	KeyRequestHeader  = "requestHeader"
	KeyRequestHost    = "host"
	KeyRequestIp      = "requesterIP"
	KeyRequestMethod  = "requestMethod"
	KeyRequestURI     = "requestURI"
	KeyRequestURL     = "requestURL"
	KeyProductID      = "productId"
	KeyOrderID        = "orderId"
	KeyQuantity       = "quantity"
	KeyMergedQuantity = "mergedQuantity"
	KeyCartItems      = "cartItems"
	KeyCartItemCount  = "cartItemCount"
	KeyCartTotal      = "cartTotal"
	KeyOrders         = "orders"
	KeyOrderCount     = "orderCount"
	KeyStoreBackend   = "storeBackend"
	KeyStorePath      = "storePath"
	KeyStoreProfile   = "storeProfile"
	KeyPaymentMethod  = "paymentMethod"
	KeyCacheKey       = "cacheKey"
)
