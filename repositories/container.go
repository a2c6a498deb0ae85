package repositories

type Repos struct {
	Appeal       AppealRepo
	History      HistoryRepo
	Status       StatusRepo
	User         UserRepo
	File         FileRepo
	Notification NotificationRepo
}

func New() *Repos {
	return &Repos{
		Appeal:       &DBAppealRepo{},
		History:      &DBHistoryRepo{},
		Status:       &DBStatusRepo{},
		User:         &DBUserRepo{},
		File:         &DBFileRepo{},
		Notification: &DBNotificationRepo{},
	}
}
