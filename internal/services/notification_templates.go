package services

import (
	"fmt"

	"outpass-backend/internal/models"
)

// The HTML bodies keep the wording of the notices the hostel office has
// always sent; only the variant-specific details block differs.

func homeVisitHTML(hv *models.HomeVisit, departure, ret string) string {
	details := fmt.Sprintf(`
        <div class="details-item">&#127968; <strong>Departure Date:</strong> %s</div>
        <div class="details-item">&#128281; <strong>Expected Return Date:</strong> %s</div>`,
		departure, ret,
	)

	body := fmt.Sprintf(`
      <p>Dear Parent,</p>
      <p>We would like to inform you that your child has been granted permission for a home visit.</p>
      <div class="student-info">
        <p><strong>Student Name:</strong> %s</p>
        <p><strong>Hostel Number:</strong> %s</p>
        <p><strong>Room Number:</strong> %s</p>
      </div>
      <div class="details">
        <h3>Visit Details:</h3>%s
      </div>
      <p>Please ensure that your child returns to the hostel on or before the expected return date. If there are any changes to the schedule, kindly inform the hostel management in advance.</p>
      <p>Thank you for your cooperation.</p>`,
		hv.StudentName, hv.HostelNumber, hv.RoomNumber, details,
	)

	return renderTemplate("HOME VISIT NOTIFICATION", "#27ae60", body)
}

func outingHTML(o *models.Outing, departure string) string {
	details := fmt.Sprintf(`
        <div class="details-item">&#128336; <strong>Departure Time:</strong> %s</div>`,
		departure,
	)

	body := fmt.Sprintf(`
      <p>Dear Parent,</p>
      <p>We would like to inform you that your child is scheduled for an approved outing from the hostel premises.</p>
      <div class="student-info">
        <p><strong>Student Name:</strong> %s</p>
        <p><strong>Hostel Number:</strong> %s</p>
        <p><strong>Room Number:</strong> %s</p>
      </div>
      <div class="details">
        <h3>Outing Details:</h3>%s
      </div>
      <p>Please note that all students are required to follow hostel guidelines regarding outings. If you have any concerns, please contact the hostel management.</p>
      <p>Thank you for your cooperation.</p>`,
		o.StudentName, o.HostelNumber, o.RoomNumber, details,
	)

	return renderTemplate("HOSTEL OUTING NOTIFICATION", "#3498db", body)
}

func renderTemplate(heading, accent, body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <style>
    body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; color: #333333; margin: 0; padding: 0; background-color: #f5f5f5; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; background-color: #ffffff; border-radius: 8px; }
    .header { text-align: center; padding: 20px 0; border-bottom: 2px solid #f0f0f0; }
    .header h1 { color: %s; margin: 0; font-size: 24px; }
    .content { padding: 20px 0; }
    .student-info { background-color: #f8f9fa; border-left: 4px solid %s; padding: 15px; margin: 15px 0; border-radius: 4px; }
    .details-item { padding: 10px 15px; background-color: #f8f9fa; border-radius: 4px; margin-bottom: 10px; }
    .footer { text-align: center; padding-top: 20px; border-top: 2px solid #f0f0f0; color: #7f8c8d; font-size: 14px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header"><h1>%s</h1></div>
    <div class="content">%s</div>
    <div class="footer">
      <p>Best Regards,<br>Hostel Management</p>
      <p style="font-size: 12px;">This is an automated notification. Please do not reply to this email.</p>
    </div>
  </div>
</body>
</html>`, accent, accent, heading, body)
}
