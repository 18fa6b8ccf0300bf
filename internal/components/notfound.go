package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func NotFound(title, message, backHref, backLabel string) g.Node {
	return Div(
		Class("min-h-[60vh] flex flex-col items-center justify-center text-center px-4 pt-24"),
		H2(Class("text-2xl font-bold mb-4"), g.Text(title)),
		P(Class("text-gray-600 mb-8"), g.Text(message)),
		A(
			Href(backHref),
			Class("bg-gray-800 hover:bg-gray-900 text-white px-6 py-2.5 rounded-full"),
			g.Text(backLabel),
		),
	)
}
