package constants

const (
	AppMarketplace   = "marketplace"
	AppClientService = "marketplace-client"
	AudienceClient   = "audience-client"
)
