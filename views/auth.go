package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/trezcool/masterly/core/account"
	"github.com/trezcool/masterly/core/onboarding"
	"github.com/trezcool/masterly/core/wizard"
)

func Login(meta Meta, form account.LoginForm, errs map[string]string) g.Node {
	return AuthPage(meta,
		h.H1(g.Text("Welcome back")),
		h.P(h.Class("muted"), g.Text("Sign in to continue learning.")),
		h.Form(h.Method("post"), h.Action("/login"), h.Class("stack"),
			field("Email", "email", "email", form.Email, errs, h.AutoComplete("email"), h.Required()),
			field("Password", "password", "password", "", errs, h.AutoComplete("current-password"), h.Required()),
			h.Div(h.Class("row"),
				checkbox("Remember me", "remember", form.Remember != "", errs),
				h.A(h.Href("/forgot-password"), g.Text("Forgot password?")),
			),
			submitButton("Sign in"),
		),
		h.P(g.Text("Don't have an account? "), h.A(h.Href("/signup"), g.Text("Sign up"))),
	)
}

func Signup(meta Meta, form account.SignupForm, errs map[string]string) g.Node {
	return AuthPage(meta,
		h.H1(g.Text("Create your account")),
		h.P(h.Class("muted"), g.Text("Start learning AI today. Free forever on the basic plan.")),
		h.Form(h.Method("post"), h.Action("/signup"), h.Class("stack"),
			h.Div(h.Class("row"),
				field("First name", "first_name", "text", form.FirstName, errs, h.AutoComplete("given-name"), h.Required()),
				field("Last name", "last_name", "text", form.LastName, errs, h.AutoComplete("family-name"), h.Required()),
			),
			field("Email", "email", "email", form.Email, errs, h.AutoComplete("email"), h.Required()),
			field("Password", "password", "password", "", errs, h.AutoComplete("new-password"), h.Required()),
			checkbox("I agree to the Terms of Service and Privacy Policy", "agree_terms", form.AgreeTerms != "", errs),
			submitButton("Create account"),
		),
		h.P(g.Text("Already have an account? "), h.A(h.Href("/login"), g.Text("Sign in"))),
	)
}

// ForgotPassword shows the request form, or the confirmation once sent is set.
func ForgotPassword(meta Meta, form account.ForgotPasswordForm, errs map[string]string, sent bool) g.Node {
	if sent {
		return AuthPage(meta,
			h.H1(g.Text("Check your email")),
			h.P(g.Textf("If an account exists for %s, you will receive password reset instructions shortly.", form.Email)),
			h.A(h.Class("btn"), h.Href("/login"), g.Text("Back to sign in")),
		)
	}
	return AuthPage(meta,
		h.H1(g.Text("Reset your password")),
		h.P(h.Class("muted"), g.Text("Enter your email and we will send you a link to reset your password.")),
		h.Form(h.Method("post"), h.Action("/forgot-password"), h.Class("stack"),
			field("Email", "email", "email", form.Email, errs, h.AutoComplete("email"), h.Required()),
			submitButton("Send reset link"),
		),
		h.A(h.Href("/login"), g.Text("Back to sign in")),
	)
}

// Onboarding renders the current step of the questionnaire. Every button posts an action.
func Onboarding(meta Meta, w *wizard.Wizard, state wizard.State, errMsg string) g.Node {
	step := w.Current(state)
	answer := w.Answer(state)

	action := func(name, value string, attrs ...g.Node) g.Node {
		return h.Form(h.Method("post"), h.Action("/onboarding"),
			h.Input(h.Type("hidden"), h.Name("action"), h.Value(name)),
			g.If(value != "", h.Input(h.Type("hidden"), h.Name("value"), h.Value(value))),
			g.Group(attrs),
		)
	}

	return AuthPage(meta,
		h.Div(h.Class("wizard-head"),
			h.P(h.Class("muted"), g.Textf("Step %d of %d", state.Step, w.Total())),
			progressBar(w.Progress(state)),
		),
		h.H1(g.Text(step.Title)),
		h.P(h.Class("muted"), g.Text(step.Subtitle)),
		flash(errMsg),
		h.Div(h.Class("wizard-options"), h.Role("radiogroup"),
			g.Map(step.Options, func(o wizard.Option) g.Node {
				selected := o.Value == answer
				return action(onboarding.ActionSelect, o.Value,
					h.Button(h.Type("submit"), h.Role("radio"), h.Aria("checked", boolAttr(selected)),
						g.If(selected, h.Class("option selected")),
						g.If(!selected, h.Class("option")),
						h.Strong(g.Text(o.Label)),
						h.Span(h.Class("muted"), g.Text(o.Description)),
					),
				)
			}),
		),
		h.Div(h.Class("wizard-actions"),
			g.If(w.CanGoBack(state), action(onboarding.ActionBack, "",
				h.Button(h.Type("submit"), h.Class("btn"), g.Text("Back")),
			)),
			action(onboarding.ActionSkip, "",
				h.Button(h.Type("submit"), h.Class("btn btn-link"), g.Text("Skip for now")),
			),
			action(onboarding.ActionContinue, "",
				h.Button(h.Type("submit"), h.Class("btn btn-primary"),
					g.If(!w.CanContinue(state), h.Disabled()),
					g.If(state.Step == w.Total(), g.Text("Get Started")),
					g.If(state.Step < w.Total(), g.Text("Continue")),
				),
			),
		),
	)
}
