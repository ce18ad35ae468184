package constants

// Severity levels attached to validation results.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// FlagReasonManipulation is recorded when a message matches a manipulation pattern.
const FlagReasonManipulation = "Försök att manipulera AI"

// ModerationBlockThreshold is the default number of violations that triggers
// an automatic block. Overridable via MODERATION_BLOCK_THRESHOLD.
const ModerationBlockThreshold = 3

// AutoBlockReason is stored on a violation record when the threshold trips.
const AutoBlockReason = "Automatiskt blockerad efter 3 regelbrott"

// User-facing moderation messages (the app speaks Swedish).
const (
	MsgPolicyRejection = "Jag kan bara svara på frågor om djur och djurvård. Ställ gärna en djurrelaterad fråga istället! 🐾"
	MsgAccountBlocked  = "Ditt konto är blockerat p.g.a. regelbrott. Kontakta admin för mer information."
	MsgEscalatedBlock  = "Du har blivit blockerad efter upprepade regelbrott. Kontakta admin."
	MsgRateLimited     = "För många förfrågningar. Vänta en stund och försök igen."
	MsgQuotaExhausted  = "AI-krediter slut. Kontakta administratören."
	MsgUpstreamFailure = "AI-tjänsten kunde inte nås. Försök igen senare."
)

// DomainAllowTerms is care/husbandry vocabulary that marks a message as
// on-topic. A hit here admits the message before any blocklist is consulted,
// which keeps legitimate care questions from being rejected when they happen
// to share a word with a blocked term.
var DomainAllowTerms = []string{
	// shopping & supplies
	"köpa", "inköp", "tillbehör", "utrustning", "bur", "terrarium", "akvarium",
	"substrat", "inredning", "gömställe", "leksak",
	// feeding
	"foder", "mat till", "äter", "äta", "utfodring", "matschema", "vatten",
	"vitamin", "kalcium", "insekter", "hö", "pellets",
	// environment
	"temperatur", "fuktighet", "belysning", "uv-ljus", "uvb", "värmelampa",
	"inomhus", "utomhus", "miljö", "habitat",
	// health
	"veterinär", "sjukdom", "sjuk", "symptom", "parasit", "skabb", "hälsa",
	"vaccin", "medicin", "skada", "kloklippning",
	// behavior & routines
	"beteende", "aggressiv", "stressad", "sover", "nattaktiv", "dagaktiv",
	"rutin", "skötsel", "rengöring", "träna", "hantera", "socialisera",
	// comparisons & general husbandry talk
	"jämför", "skillnad mellan", "vilket djur passar", "lämplig för nybörjare",
	"svårighetsgrad", "livslängd",
	// common care question openers
	"hur ofta", "hur mycket", "hur länge", "vad behöver", "vad ska",
	"när ska",
}

// ManipulationPatterns are phrases that attempt to override the assistant's
// instructions. Any match rejects the message outright.
var ManipulationPatterns = []string{
	"ignorera instruktioner",
	"ignorera dina instruktioner",
	"ignorera tidigare instruktioner",
	"glöm dina regler",
	"låtsas att",
	"du är nu",
	"nya instruktioner",
	"system prompt",
	"systemprompt",
	"override",
	"bypass",
	"ignore previous",
	"ignore previous instructions",
	"forget your rules",
	"pretend you are",
	"jailbreak",
}

// StrictlyBlockedTerms is a short, high-harm blocklist. A broad off-topic
// list (politics, sports, money, relationships) was tried in an earlier
// policy revision and produced false positives on innocuous phrasing; only
// genuinely harmful topics reject a message now. Everything else ambiguous is
// passed through and redirected by the system prompt.
var StrictlyBlockedTerms = []string{
	// sexual content involving animals
	"tidelag", "sex med djur", "bestiality",
	// animal cruelty
	"plåga djur", "tortera djur", "skada djur med flit", "djurplågeri",
	"döda katten", "döda hunden",
	// illegal trade
	"smuggla djur", "sälja utrotningshotade", "illegal handel",
	"olaglig import av djur",
	// unrelated high-harm topics
	"hacka", "hacking", "lösenord till", "stjäla", "bomb", "terrorism",
	"tillverka vapen", "droger recept",
}
