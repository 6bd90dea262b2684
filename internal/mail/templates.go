package mail

import "fmt"

// RegistrationBody is the confirmation mail sent after a registrant is
// created. qrImageURL points at the hosted QR PNG for the badge.
func RegistrationBody(name, rollNumber, eventName, scanURL, qrImageURL string) string {
	return fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your registration for <strong>%s</strong> is confirmed.</p>
		<p>Roll number: %s</p>
		<p>Present this QR code at the venue to mark your attendance:</p>
		<p><img src="%s" alt="QR code" width="256" height="256"/></p>
		<p><a href="%s">%s</a></p>
		<p>Best Regards,<br/>The Event Team</p>`,
		name, eventName, rollNumber, qrImageURL, scanURL, scanURL)
}

// ReminderBody is the pre-event reminder mail.
func ReminderBody(name, eventName, venue, when string) string {
	return fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for <strong>%s</strong>.</p>
		<p>📍 %s<br/>🗓️ %s</p>
		<p>See you there!</p>
		<p>Best Regards,<br/>The Event Team</p>`,
		name, eventName, venue, when)
}

// CertificateBody accompanies the attached participation certificate.
func CertificateBody(name, eventName string) string {
	return fmt.Sprintf(`
		<p>Dear %s,</p>
		<p><strong>Thank you for attending the %s session!</strong> We appreciate your participation and hope you found it valuable.</p>
		<p>Please find your certificate of participation attached to this email.</p>
		<p>Best Regards,<br/>The Event Team</p>`,
		name, eventName)
}
