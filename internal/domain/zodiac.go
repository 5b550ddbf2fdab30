package domain

// Label carries an English name and its Tamil passthrough.
type Label struct {
	En string
	Ta string
}

// Rashis are the twelve signs, Aries first. Index 11 keeps the source
// label "Meena" for Pisces.
var Rashis = [12]Label{
	{En: "Aries", Ta: "மேஷம்"},
	{En: "Taurus", Ta: "ரிஷபம்"},
	{En: "Gemini", Ta: "மிதுனம்"},
	{En: "Cancer", Ta: "கடகம்"},
	{En: "Leo", Ta: "சிம்மம்"},
	{En: "Virgo", Ta: "கன்னி"},
	{En: "Libra", Ta: "துலாம்"},
	{En: "Scorpio", Ta: "விருச்சிகம்"},
	{En: "Sagittarius", Ta: "தனுசு"},
	{En: "Capricorn", Ta: "மகரம்"},
	{En: "Aquarius", Ta: "கும்பம்"},
	{En: "Meena", Ta: "மீனம்"},
}

// Nakshatras are the 27 lunar mansions, Ashwini first.
var Nakshatras = [27]Label{
	{En: "Ashwini", Ta: "அஸ்வினி"},
	{En: "Bharani", Ta: "பரணி"},
	{En: "Krittika", Ta: "கார்த்திகை"},
	{En: "Rohini", Ta: "ரோகிணி"},
	{En: "Mrigashira", Ta: "மிருகசீரிடம்"},
	{En: "Ardra", Ta: "திருவாதிரை"},
	{En: "Punarvasu", Ta: "புனர்பூசம்"},
	{En: "Pushya", Ta: "பூசம்"},
	{En: "Ashlesha", Ta: "ஆயில்யம்"},
	{En: "Magha", Ta: "மகம்"},
	{En: "Purva Phalguni", Ta: "பூரம்"},
	{En: "Uttara Phalguni", Ta: "உத்திரம்"},
	{En: "Hasta", Ta: "அஸ்தம்"},
	{En: "Chitra", Ta: "சித்திரை"},
	{En: "Swati", Ta: "சுவாதி"},
	{En: "Vishakha", Ta: "விசாகம்"},
	{En: "Anuradha", Ta: "அனுஷம்"},
	{En: "Jyeshtha", Ta: "கேட்டை"},
	{En: "Mula", Ta: "மூலம்"},
	{En: "Purva Ashadha", Ta: "பூராடம்"},
	{En: "Uttara Ashadha", Ta: "உத்திராடம்"},
	{En: "Shravana", Ta: "திருவோணம்"},
	{En: "Dhanishta", Ta: "அவிட்டம்"},
	{En: "Shatabhisha", Ta: "சதயம்"},
	{En: "Purva Bhadrapada", Ta: "பூரட்டாதி"},
	{En: "Uttara Bhadrapada", Ta: "உத்திரட்டாதி"},
	{En: "Revati", Ta: "ரேவதி"},
}

// SignModality returns the modal class of sign index 0..11.
func SignModality(sign int) Modality {
	switch ((sign % 12) + 12) % 12 % 3 {
	case 0:
		return ModalityMovable
	case 1:
		return ModalityFixed
	default:
		return ModalityDual
	}
}
