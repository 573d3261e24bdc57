package services

import (
	"io"
	"log"
	"net/http"
	"time"
)

// LogoURL is the fixed source of the header logo image.
const LogoURL = "https://www.abitalab.it/assets/custom/266/img/logo.png"

var defaultLogoClient = &http.Client{Timeout: 10 * time.Second}

// FetchLogo retrieves the logo image. It never fails: any transport
// error, timeout or non-200 response yields nil, which the layout
// replaces with the company-name text fallback. A nil client uses the
// default one with its 10 second timeout.
func FetchLogo(client *http.Client, url string) []byte {
	if client == nil {
		client = defaultLogoClient
	}

	resp, err := client.Get(url)
	if err != nil {
		log.Printf("logo: fetch failed: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("logo: unexpected status %d", resp.StatusCode)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("logo: read failed: %v", err)
		return nil
	}
	return data
}
