package clients

const (
	AZURE_SENTIMENT_PATH = "/text/analytics/v3.1/sentiment"
	AZURE_KEY_HEADER     = "Ocp-Apim-Subscription-Key"
	DOCUMENT_ID          = "1"
	DOCUMENT_LANGUAGE    = "pt"
	USER_AGENT           = "sentilines-client/1.0 (+https://github.com/spacesedan/sentilines)"
)
