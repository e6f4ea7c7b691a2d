package label

import (
	"log/slog"

	"carrierlabel/internal/core/domain/model/parcel"
)

// Contact is the carrier contact block printed in the top-left corner of every label.
type Contact struct {
	// LogoPath points to a PNG or JPEG file. Empty skips the logo.
	LogoPath string
	Phone    string
	Email    string
	Web      string
}

// DefaultContact is the carrier's public phone line, e-mail and web address.
func DefaultContact() Contact {
	return Contact{
		Phone: "Modrá linka: 844 775 775",
		Email: "E-mail: info@ppl.cz",
		Web:   "https:// www.ppl.cz",
	}
}

// Texts are the fixed captions of the label. PhoneFormat receives the recipient
// phone number as its only argument.
type Texts struct {
	SenderHeading    string
	RecipientHeading string
	CODLabel         string
	NotePrefix       string
	PhoneFormat      string
	Evening          string
	Day              string
}

// CzechTexts are the captions used by the carrier on domestic labels.
func CzechTexts() Texts {
	return Texts{
		SenderHeading:    "Odesílatel:",
		RecipientHeading: "Příjemce:",
		CODLabel:         "DOB.:",
		NotePrefix:       "Pozn.: ",
		PhoneFormat:      "Tel.: %s",
		Evening:          "Večer",
		Day:              "Den",
	}
}

const (
	documentSubject  = "Professional Parcel Logistic Label"
	documentKeywords = "Professional Parcel Logistic"
)

type config struct {
	contact       Contact
	texts         Texts
	dayNightBadge bool
	defaultSender parcel.Sender
	author        string
	creator       string
	logger        *slog.Logger
}

func defaultConfig() config {
	return config{
		contact:       DefaultContact(),
		texts:         CzechTexts(),
		dayNightBadge: true,
		creator:       "carrierlabel",
		logger:        slog.Default(),
	}
}

// Option configures an Engine.
type Option func(*config)

// WithContact replaces the carrier contact block printed in the top-left corner.
func WithContact(contact Contact) Option {
	return func(c *config) {
		c.contact = contact
	}
}

// WithTexts replaces the fixed captions. CzechTexts is the default.
func WithTexts(texts Texts) Option {
	return func(c *config) {
		c.texts = texts
	}
}

// WithDayNightBadge turns the black day/evening badge on or off. It is on by default.
func WithDayNightBadge(enabled bool) Option {
	return func(c *config) {
		c.dayNightBadge = enabled
	}
}

// WithDefaultSender is printed for packages without a sender of their own.
func WithDefaultSender(sender parcel.Sender) Option {
	return func(c *config) {
		c.defaultSender = sender
	}
}

// WithAuthor sets the document author metadata.
func WithAuthor(author string) Option {
	return func(c *config) {
		c.author = author
	}
}

// WithCreator sets the document creator metadata. It defaults to "carrierlabel".
func WithCreator(creator string) Option {
	return func(c *config) {
		c.creator = creator
	}
}

// WithLogger sets the logger. A nil logger keeps slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
