package listing

import "github.com/imobiflow/imobiflow-api/internal/domain"

// DefaultPlaceholderImage é usada quando o imóvel não tem nenhuma imagem
const DefaultPlaceholderImage = "/placeholder.jpg"

// ResolveImage escolhe a imagem de capa: lista explícita, depois a imagem
// marcada como principal, depois a primeira cadastrada e por fim o placeholder.
func ResolveImage(property *domain.Property, placeholder string) string {
	if placeholder == "" {
		placeholder = DefaultPlaceholderImage
	}

	if len(property.Images) > 0 && property.Images[0] != "" {
		return property.Images[0]
	}

	for _, image := range property.PropertyImages {
		if image.IsPrimary && image.ImageURL != "" {
			return image.ImageURL
		}
	}

	if len(property.PropertyImages) > 0 && property.PropertyImages[0].ImageURL != "" {
		return property.PropertyImages[0].ImageURL
	}

	return placeholder
}
