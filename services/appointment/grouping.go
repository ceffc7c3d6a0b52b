package appointment

import "bookflow/models"

// GroupServices joins two independently fetched flat lists into grouped
// catalog entries: every group is preserved (with an empty services slice
// when nothing matches) and each service lands only under the group whose
// id it references. Lists are bounded by one company's catalog, so a plain
// nested scan per group via a bucket map is fine.
func GroupServices(groups []models.ServiceGroup, services []models.Service) []models.GroupedServiceGroup {
	byGroup := make(map[int64][]models.GroupedService, len(groups))
	for _, svc := range services {
		byGroup[svc.ServiceGroupID] = append(byGroup[svc.ServiceGroupID], models.GroupedService{
			ID:              svc.ID,
			Name:            svc.Name,
			DurationMinutes: svc.DurationMinutes,
			Price:           svc.Price,
		})
	}

	grouped := make([]models.GroupedServiceGroup, 0, len(groups))
	for _, g := range groups {
		services := byGroup[g.ID]
		if services == nil {
			services = []models.GroupedService{}
		}
		grouped = append(grouped, models.GroupedServiceGroup{
			ID:       g.ID,
			Name:     g.Name,
			Services: services,
		})
	}
	return grouped
}
