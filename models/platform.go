package models

// Platform is a supported social media platform. The set is fixed at
// compile time so an unrecognized platform can never reach business logic
// unnoticed.
type Platform string

const (
	PlatformInstagram Platform = "Instagram"
	PlatformTwitterX  Platform = "Twitter/X"
	PlatformLinkedIn  Platform = "LinkedIn"
	PlatformFacebook  Platform = "Facebook"
	PlatformTikTok    Platform = "TikTok"
	PlatformYouTube   Platform = "YouTube"
	PlatformGeneral   Platform = "General"
)

// SupportedPlatforms lists all valid platforms in display order.
var SupportedPlatforms = []Platform{
	PlatformInstagram,
	PlatformTwitterX,
	PlatformLinkedIn,
	PlatformFacebook,
	PlatformTikTok,
	PlatformYouTube,
	PlatformGeneral,
}

// Valid reports whether p is one of the supported platforms.
func (p Platform) Valid() bool {
	for _, v := range SupportedPlatforms {
		if p == v {
			return true
		}
	}
	return false
}

func (p Platform) String() string { return string(p) }

// Tone is a supported writing tone for generated content.
type Tone string

const (
	ToneProfessional Tone = "Professional"
	ToneCasual       Tone = "Casual"
	ToneInspiring    Tone = "Inspiring"
	ToneEducational  Tone = "Educational"
	ToneHumorous     Tone = "Humorous"
	ToneUrgent       Tone = "Urgent"
	ToneFriendly     Tone = "Friendly"
)

// ToneOptions lists all valid tones in display order.
var ToneOptions = []Tone{
	ToneProfessional,
	ToneCasual,
	ToneInspiring,
	ToneEducational,
	ToneHumorous,
	ToneUrgent,
	ToneFriendly,
}

// Valid reports whether t is one of the supported tones.
func (t Tone) Valid() bool {
	for _, v := range ToneOptions {
		if t == v {
			return true
		}
	}
	return false
}

func (t Tone) String() string { return string(t) }

// ContentLength is the preferred length of generated content.
type ContentLength string

const (
	LengthShort  ContentLength = "Short"
	LengthMedium ContentLength = "Medium"
	LengthLong   ContentLength = "Long"
)
