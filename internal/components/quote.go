package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/NeilHuang625/zcmetal/internal/content"
	"github.com/NeilHuang625/zcmetal/pkg/visibility"
)

const fieldClass = "w-full px-0 py-2 border-0 border-b-2 border-gray-300 bg-transparent placeholder-gray-400 text-base focus:outline-none focus:border-black focus:ring-0 transition"

// GetQuote is the quote request form. It posts to an external form
// endpoint; the site never handles submissions.
func GetQuote(q content.Quote, action string, visible bool) g.Node {
	return Section(
		ID(SectionQuote),
		RevealRoot(SectionQuote),
		Class("py-24 bg-white"),
		Div(
			Reveal(visibility.FadeUp, visible, "max-w-3xl mx-auto px-6"),
			H3(Class("text-xl font-semibold tracking-widest text-gray-900 uppercase mb-8"), g.Text("Get a Quote")),
			Form(
				Action(action),
				Method("POST"),
				Class("space-y-8"),
				Div(
					Class("grid md:grid-cols-2 gap-8"),
					textField("firstName", "First Name", "text", true),
					textField("lastName", "Last Name", "text", true),
				),
				Div(
					Class("grid md:grid-cols-2 gap-8"),
					textField("email", "Email", "email", true),
					textField("phone", "Phone", "tel", false),
				),
				selectField("service", "Service Needed", q.Services),
				selectField("budget", "Budget Range", q.Budgets),
				selectField("referral", "How did you hear about us?", q.Referrals),
				Textarea(
					Name("message"),
					Placeholder("Describe your project..."),
					Rows("4"),
					Class(fieldClass),
				),
				Button(
					Type("submit"),
					Class("bg-gray-900 text-white px-10 py-3 rounded-full tracking-wider hover:bg-gray-700"),
					g.Text("Submit"),
				),
			),
		),
	)
}

func textField(name, label, kind string, required bool) g.Node {
	return Input(
		Type(kind),
		Name(name),
		Placeholder(label),
		g.Attr("aria-label", label),
		g.If(required, Required()),
		Class(fieldClass),
	)
}

func selectField(name, label string, opts []content.Option) g.Node {
	return Select(
		Name(name),
		g.Attr("aria-label", label),
		Class(fieldClass),
		Option(Value(""), g.Text(label)),
		g.Map(opts, func(o content.Option) g.Node {
			return Option(Value(o.Value), g.Text(o.Label))
		}),
	)
}
