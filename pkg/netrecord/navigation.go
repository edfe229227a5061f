package netrecord

// NavigationURLs describes the boundary URLs of the primary navigation:
// the URL the load was asked for, the main document URL it settled on
// after redirects, and the URL finally displayed.
type NavigationURLs struct {
	RequestedURL      string `json:"requestedUrl"`
	MainDocumentURL   string `json:"mainDocumentUrl"`
	FinalDisplayedURL string `json:"finalDisplayedUrl"`
}
