package models

// SiteConfig describes every editable field of the landing page.
// All fields are free-form strings; nothing is validated.
type SiteConfig struct {
	SiteTitle    string `json:"siteTitle"`
	HeroTitle    string `json:"heroTitle"`
	HeroDesc     string `json:"heroDesc"`
	LogoURL      string `json:"logoUrl"`
	BgURL        string `json:"bgUrl"`
	VideoPoster  string `json:"videoPoster"`
	VideoURL     string `json:"videoUrl"`
	DownloadLink string `json:"downloadLink"`
}

// DefaultSiteConfig is served until the first successful update.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		SiteTitle:    "大鸡巴视频播放器",
		HeroTitle:    "超清流畅体验",
		HeroDesc:     "支持全平台播放\n智能编解码技术\n极速秒开不卡顿",
		LogoURL:      "https://www.cloudflare.com/img/logo-cloudflare-dark.svg",
		BgURL:        "https://images.unsplash.com/photo-1626814026160-2237a95fc5a0",
		VideoPoster:  "https://images.unsplash.com/photo-1536440136628-849c177e76a1",
		VideoURL:     "https://interactive-examples.mdn.mozilla.net/media/cc0-videos/flower.mp4",
		DownloadLink: "#",
	}
}
