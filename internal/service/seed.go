package service

import "github.com/savi-dev/savi/shared/domain"

// SeedNotifications returns the fixed first-login notification set for a
// role. Deterministic: same role, same list. Unknown roles get nothing.
func SeedNotifications(role domain.Role) []domain.Notification {
	switch role {
	case domain.RoleCustomer:
		return []domain.Notification{
			{
				Id:      "1",
				Type:    domain.NotificationForum,
				Title:   "Your thread got a reply",
				Message: `Technician Sarah replied to thread "HOW TO FIX THE ROBOT WHEEL"`,
				Time:    "5 minutes ago",
			},
			{
				Id:      "2",
				Type:    domain.NotificationOrder,
				Title:   "Order shipped",
				Message: "Order #1234 - Smart IoT Sensor Kit is on its way",
				Time:    "2 hours ago",
			},
			{
				Id:      "3",
				Type:    domain.NotificationMonitoring,
				Title:   "Monitoring alert",
				Message: "Greenhouse A temperature exceeded the normal range (35°C)",
				Time:    "3 hours ago",
			},
			{
				Id:      "4",
				Type:    domain.NotificationSecurity,
				Title:   "Password changed",
				Message: "Your account password was changed. Use the new password for your next login.",
				Time:    "5 hours ago",
			},
			{
				Id:      "5",
				Type:    domain.NotificationOrder,
				Title:   "Order delivered",
				Message: "Order #1233 - Hydroponic Growing System has arrived",
				Time:    "1 day ago",
				IsRead:  true,
			},
			{
				Id:      "6",
				Type:    domain.NotificationForum,
				Title:   "Your thread got a reply",
				Message: `Mike Johnson replied to thread "HUMIDITY SENSOR INACCURATE"`,
				Time:    "2 days ago",
				IsRead:  true,
			},
		}
	case domain.RoleTechnician:
		return []domain.Notification{
			{
				Id:      "1",
				Type:    domain.NotificationForum,
				Title:   "New comment",
				Message: "Customer John replied to your forum comment",
				Time:    "10 minutes ago",
			},
			{
				Id:      "2",
				Type:    domain.NotificationSystem,
				Title:   "New maintenance task",
				Message: "You are assigned to sensor calibration in Greenhouse B",
				Time:    "1 hour ago",
			},
			{
				Id:      "3",
				Type:    domain.NotificationForum,
				Title:   "New question",
				Message: "Customer Sarah opened a new thread about a harvesting robot issue",
				Time:    "4 hours ago",
			},
			{
				Id:      "4",
				Type:    domain.NotificationSystem,
				Title:   "Task completed",
				Message: `Maintenance task "Robot harvesting arm" has been completed`,
				Time:    "1 day ago",
				IsRead:  true,
			},
		}
	case domain.RoleAdmin:
		return []domain.Notification{
			{
				Id:         "1",
				Type:       domain.NotificationRegistration,
				Title:      "Technician registration request",
				Message:    "Ahmad Hidayat applied to register as a technician",
				Time:       "15 minutes ago",
				ActionType: domain.ActionApprove,
				ActionData: &domain.RegistrationData{
					UserId:    "tech_001",
					UserName:  "Ahmad Hidayat",
					UserEmail: "ahmad.hidayat@example.com",
				},
			},
			{
				Id:         "2",
				Type:       domain.NotificationRegistration,
				Title:      "Technician registration request",
				Message:    "Budi Santoso applied to register as a technician",
				Time:       "1 hour ago",
				ActionType: domain.ActionApprove,
				ActionData: &domain.RegistrationData{
					UserId:    "tech_002",
					UserName:  "Budi Santoso",
					UserEmail: "budi.santoso@example.com",
				},
			},
			{
				Id:      "3",
				Type:    domain.NotificationSystem,
				Title:   "Monthly report",
				Message: "The November sales report is ready",
				Time:    "3 hours ago",
			},
			{
				Id:      "4",
				Type:    domain.NotificationSystem,
				Title:   "System update",
				Message: "12 new products were added to the catalog",
				Time:    "5 hours ago",
				IsRead:  true,
			},
		}
	default:
		return []domain.Notification{}
	}
}
