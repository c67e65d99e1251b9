package handlers

import "trustmate/models"

func servicesCatalog() []models.ServiceCategory {
	return models.ServiceCatalog
}
