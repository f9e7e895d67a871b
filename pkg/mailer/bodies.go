package mailer

import "fmt"

// ResetPasswordBody builds the plaintext reset mail.
func ResetPasswordBody(name, link string) (subject, text string) {
	subject = "Reset your password"
	text = fmt.Sprintf(
		"Hi %s,\n\nA password reset was requested for your account. "+
			"Open the link below to choose a new password. "+
			"The link expires in 30 minutes.\n\n%s\n\n"+
			"If you did not request this, you can ignore this email.\n",
		name, link)
	return subject, text
}

// OrderNotificationBody builds the plaintext order notification sent to the
// configured admin address.
func OrderNotificationBody(orderID, customerName, customerEmail, customerPhone, note string) (subject, text string) {
	subject = fmt.Sprintf("New order %s", orderID)
	text = fmt.Sprintf(
		"A new order was placed.\n\nOrder: %s\nCustomer: %s\nEmail: %s\nPhone: %s\nNote: %s\n",
		orderID, customerName, customerEmail, customerPhone, note)
	return subject, text
}
