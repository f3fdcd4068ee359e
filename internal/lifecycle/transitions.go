package lifecycle

import "github.com/Leganyst/homeservice-platform/internal/model"

// Допустимые переходы статуса заявки. Из completed, cancelled и устаревшего
// accepted переходов нет.
var transitions = map[model.RequestStatus][]model.RequestStatus{
	model.RequestStatusPending:    {model.RequestStatusInProgress, model.RequestStatusCancelled},
	model.RequestStatusInProgress: {model.RequestStatusCompleted, model.RequestStatusCancelled},
}

// CanTransition сообщает, разрешён ли переход from -> to.
func CanTransition(from, to model.RequestStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// cancellableBy перечисляет статусы, из которых роль может отменить заявку.
// Заказчик отменяет только ещё не начатую работу, исполнитель — и начатую.
func cancellableBy(customer bool) []model.RequestStatus {
	if customer {
		return []model.RequestStatus{model.RequestStatusPending}
	}
	return []model.RequestStatus{model.RequestStatusPending, model.RequestStatusInProgress}
}

func statusIn(s model.RequestStatus, set []model.RequestStatus) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func statusNames(set []model.RequestStatus) []string {
	out := make([]string, 0, len(set))
	for _, v := range set {
		out = append(out, string(v))
	}
	return out
}
