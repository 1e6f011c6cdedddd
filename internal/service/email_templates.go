package service

import "fmt"

func verificationCodeEmailTemplate(code, appName string) (string, string) {
	subject := fmt.Sprintf("Confirm your email for %s", appName)
	body := fmt.Sprintf(`Your verification code:

%s

Enter it in the confirmation dialog on the site to activate your account.

If you didn't register, you can safely ignore this email.

Best,
The %s Team`, code, appName)

	return subject, body
}

func welcomeEmailTemplate(name, appURL, appName string) (string, string) {
	subject := fmt.Sprintf("Welcome to %s!", appName)
	body := fmt.Sprintf(`Hi %s,

Your email is verified and your account is active!

Get started: %s

If you have questions, reach out to our support team.

Best,
The %s Team`, name, appURL, appName)

	return subject, body
}
