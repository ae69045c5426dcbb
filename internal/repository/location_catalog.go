package repository

import "dental-landing/internal/domain/entity"

const (
	botero     = "Doctora Jannett Botero"
	boteroShot = "https://hebbkx1anhila5yf.public.blob.vercel-storage.com/DraJannet.jpg-eJxljkfCSkGYll0rseS5AqzM0kB4HF.jpeg"
)

var boteroProfile = entity.Staff{
	Name:        "Dra. Jannett Botero",
	Title:       "Directora Médica y Especialista",
	Specialties: []string{"Rehabilitación Oral", "Estética Facial", "Implantología", "Estética Oral", "Periodoncia"},
	Experience:  "+38 años de experiencia",
	Description: "Especialista en odontología estética y rehabilitación oral con formación internacional. " +
		"Comprometida con brindar tratamientos de la más alta calidad utilizando tecnología de vanguardia.",
	Image: boteroShot,
}

func clinicServices() []entity.Service {
	return []entity.Service{
		{Name: "Rehabilitación Oral", Description: "Restauración completa de la función masticatoria"},
		{Name: "Estética Facial", Description: "Tratamientos de rejuvenecimiento facial"},
		{Name: "Ortodoncia", Description: "Corrección de malposiciones dentales"},
		{Name: "Endodoncia", Description: "Tratamiento de conductos radiculares"},
		{Name: "Implantología", Description: "Implantes dentales de última generación"},
		{Name: "Cirugía Oral", Description: "Procedimientos quirúrgicos especializados"},
	}
}

// DefaultCatalog returns the records served in production, one per region.
func DefaultCatalog() []entity.LocationRecord {
	return []entity.LocationRecord{
		{
			Region:    entity.RegionChile,
			Label:     "Chile",
			Flag:      "🇨🇱",
			City:      "La Serena, Chile",
			Doctor:    botero,
			Address:   "Los arrayanes 1288 El Milagro - La Serena",
			Phone:     "+56 923 74 2352",
			WhatsApp:  "https://w.app/lzfyw8",
			Instagram: "bybodontoestetica",
			Currency:  "CLP",
			VideoURL:  "/chile-video.mp4",
			Staff:     []entity.Staff{boteroProfile},
			Services:  clinicServices(),
			Testimonials: []entity.Testimonial{
				{Author: "María González", Rating: 5, Comment: "Excelente atención y resultados increíbles. La Dra. Botero es muy profesional y cuidadosa.", Treatment: "Estética Dental"},
				{Author: "Carlos Rodríguez", Rating: 5, Comment: "Mi sonrisa cambió completamente. El tratamiento de ortodoncia fue perfecto.", Treatment: "Ortodoncia"},
				{Author: "Ana Martínez", Rating: 5, Comment: "Instalaciones modernas y tecnología de punta. Me siento muy segura aquí.", Treatment: "Implantología"},
				{Author: "Javiera Muñoz", Rating: 5, Comment: "Mi rehabilitación oral quedó impecable y sin dolor.", Treatment: "Rehabilitación Oral"},
				{Author: "Felipe Rojas", Rating: 4, Comment: "Muy buena explicación de cada paso del tratamiento de conducto.", Treatment: "Endodoncia"},
				{Author: "Constanza Soto", Rating: 5, Comment: "Los resultados de estética facial superaron mis expectativas.", Treatment: "Estética Facial"},
			},
		},
		{
			Region:      entity.RegionColombia,
			Label:       "Colombia",
			Flag:        "🇨🇴",
			City:        "Zarzal, Colombia",
			Doctor:      botero,
			Address:     "Carrera 8 # 9 -56 B Quindío, Zarzal Valle",
			Phone:       "313 347 5347",
			WhatsApp:    "https://w.app/t34y65",
			Instagram:   "odontoesteticazarzal",
			Currency:    "COP",
			VideoURL:    "/colombia-video.mp4",
			MapEmbedURL: "https://www.google.com/maps/embed?pb=!4v1758144198329!6m8!1m7!1soLMhyrCKlzV2LJVdKecSKg!2m2!1d4.393790780352298!2d-76.07084266430222!3f136.51447795167994!4f-9.32693456541466!5f0.7820865974627469",
			Staff: []entity.Staff{
				boteroProfile,
				{
					Name:        "Dra. Daniela Jaramillo",
					Title:       "Especialista en Ortodoncia y Ortopedia Maxilar",
					Specialties: []string{"Ortodoncia", "Ortopedia Maxilar", "Odontopediatría"},
					Experience:  "8+ años de experiencia",
					Description: "Especialista en ortodoncia y ortopedia maxilar con enfoque en tratamientos integrales para niños y adultos. " +
						"Experta en corrección de maloclusiones y desarrollo facial con técnicas avanzadas.",
					Image: "/images/Doctora Daniela.jpg",
				},
			},
			Services: clinicServices(),
			Testimonials: []entity.Testimonial{
				{Author: "Luisa Fernanda Ríos", Rating: 5, Comment: "La Dra. Daniela tiene una paciencia increíble con mis hijos.", Treatment: "Odontopediatría"},
				{Author: "Andrés Cardona", Rating: 5, Comment: "Mis brackets quedaron listos antes de lo esperado. Muy recomendados.", Treatment: "Ortodoncia"},
				{Author: "Paola Restrepo", Rating: 5, Comment: "El implante se siente como un diente natural.", Treatment: "Implantología"},
				{Author: "Jorge Valencia", Rating: 4, Comment: "Atención puntual y un equipo muy amable en Zarzal.", Treatment: "Cirugía Oral"},
				{Author: "Diana Osorio", Rating: 5, Comment: "Recuperé la confianza para sonreír gracias a la estética oral.", Treatment: "Estética Dental"},
				{Author: "Camilo Henao", Rating: 5, Comment: "Tratamiento de conducto rápido y sin molestias.", Treatment: "Endodoncia"},
			},
		},
	}
}
