package response

import "travel-booking/internal/pkg/config"

type SiteResponse struct {
	Name          string `json:"site_name"`
	CustomHeader  string `json:"custom_header"`
	Advertisement string `json:"advertisement"`
	HeroImageURL  string `json:"hero_image_url"`
}

func FromSiteConfig(c config.SiteConfig) *SiteResponse {
	return &SiteResponse{
		Name:          c.Name,
		CustomHeader:  c.CustomHeader,
		Advertisement: c.Advertisement,
		HeroImageURL:  c.HeroImageURL,
	}
}
