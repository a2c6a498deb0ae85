package services

import "appeals-api/repositories"

type Services struct {
	Status   *StatusService
	Notifier *NotificationService
	Appeal   *AppealService
}

func New(repos *repositories.Repos, mailer Mailer) *Services {
	status := NewStatusService(repos.Status)
	notifier := NewNotificationService(mailer, repos.Notification)
	return &Services{
		Status:   status,
		Notifier: notifier,
		Appeal:   NewAppealService(repos, status, notifier),
	}
}
