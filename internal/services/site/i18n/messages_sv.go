package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tsolutions/site/internal/services/site/resource"
)

func init() {
	lang := language.Swedish

	// Layout
	message.SetString(lang, "site.name", "T-Solutions")
	message.SetString(lang, "title.page", "%s | T-Solutions")
	message.SetString(lang, "nav.home", "Hem")
	message.SetString(lang, "nav.services", "Tjänster")
	message.SetString(lang, "nav.faqs", "Vanliga frågor")
	message.SetString(lang, "nav.reviews", "Omdömen")
	message.SetString(lang, "nav.about", "Om oss")
	message.SetString(lang, "nav.contact", "Kontakt")
	message.SetString(lang, "nav.login", "Logga in")
	message.SetString(lang, "nav.logout", "Logga ut")
	message.SetString(lang, "footer.copy", "© T-Solutions")

	// Static pages
	message.SetString(lang, "home.heading", "Teknik som fungerar för ditt företag")
	message.SetString(lang, "home.body", "Vi planerar, bygger och underhåller den IT ditt företag är beroende av, så att du kan fokusera på dina kunder.")
	message.SetString(lang, "home.cta", "Se våra tjänster")
	message.SetString(lang, "about.heading", "Om oss")
	message.SetString(lang, "about.body", "T-Solutions är ett litet team av ingenjörer som hjälper lokala företag med nätverk, webb och support.")
	message.SetString(lang, "contact.heading", "Kontakt")
	message.SetString(lang, "contact.body", "Nå oss via e-post eller telefon vardagar mellan 08:00 och 17:00.")
	message.SetString(lang, "contact.email", "E-post")
	message.SetString(lang, "contact.phone", "Telefon")

	// Resource pages
	message.SetString(lang, "Services", "Tjänster")
	message.SetString(lang, "FAQ", "Vanliga frågor")
	message.SetString(lang, "Reviews", "Omdömen")
	message.SetString(lang, "Name", "Namn")
	message.SetString(lang, "Description", "Beskrivning")
	message.SetString(lang, "Question", "Fråga")
	message.SetString(lang, "Answer", "Svar")
	message.SetString(lang, "Grade", "Betyg")
	message.SetString(lang, "list.empty", "Här finns inget ännu.")
	message.SetString(lang, "list.create", "Lägg till")
	message.SetString(lang, "list.db_error", "Listan kunde inte laddas. Försök igen senare.")
	message.SetString(lang, "detail.not_found", "Posten finns inte.")
	message.SetString(lang, "detail.db_error", "Posten kunde inte laddas. Försök igen senare.")
	message.SetString(lang, "detail.edit", "Redigera")
	message.SetString(lang, "detail.delete", "Ta bort")
	message.SetString(lang, "detail.back", "Tillbaka till listan")
	message.SetString(lang, "form.create_heading", "Ny post i %s")
	message.SetString(lang, "form.update_heading", "Redigera post i %s")
	message.SetString(lang, "form.create_submit", "Skapa")
	message.SetString(lang, "form.update_submit", "Spara ändringar")
	message.SetString(lang, "review.grade", "%s/10")

	// Problems
	message.SetString(lang, resource.MsgTooShort, "Fel: %s får inte vara kortare än %d tecken")
	message.SetString(lang, resource.MsgTooLong, "Fel: %s får vara högst %d tecken lång")
	message.SetString(lang, resource.MsgNotANumber, "Fel: %s måste vara ett tal")
	message.SetString(lang, resource.MsgBelowMin, "Fel: %s får inte vara mindre än %d")
	message.SetString(lang, resource.MsgAboveMax, "Fel: %s får vara högst %d")
	message.SetString(lang, resource.MsgUnauthorized, "Fel: Du har inte administratörsbehörighet")
	message.SetString(lang, resource.MsgInternal, "Fel: Internt serverfel")

	// Notices
	message.SetString(lang, resource.NoticeCreated, "Sparat. Posten skapades.")
	message.SetString(lang, resource.NoticeUpdated, "Sparat. Posten uppdaterades.")
	message.SetString(lang, resource.NoticeDeleted, "Posten togs bort.")

	// Login
	message.SetString(lang, "login.heading", "Administratörsinloggning")
	message.SetString(lang, "login.username", "Användarnamn")
	message.SetString(lang, "login.password", "Lösenord")
	message.SetString(lang, "login.submit", "Logga in")
	message.SetString(lang, "login.failed", "Fel användarnamn eller lösenord.")
	message.SetString(lang, "notice.signed_in", "Du är inloggad.")
	message.SetString(lang, "notice.signed_out", "Du är utloggad.")

	// Errors
	message.SetString(lang, "error.not_found", "Sidan hittades inte")
	message.SetString(lang, "error.internal", "Något gick fel")
	message.SetString(lang, "error.bad_request", "Formuläret kunde inte läsas.")
	message.SetString(lang, "error.method_not_allowed", "Den åtgärden finns inte här.")
	message.SetString(lang, "error.forbidden_origin", "Begäran kom inte från den här webbplatsen.")
	message.SetString(lang, "error.session_unavailable", "Inloggning är inte tillgänglig just nu. Försök igen om en stund.")
}
