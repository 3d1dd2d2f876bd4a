package catalog

import "github.com/prophetsmedicine/clinic-platform/internal/i18n"

// DefaultServices is the canonical treatment catalog, used to seed the store
// and as the public fallback when the store is unreachable or empty.
var DefaultServices = []ServiceOffering{
	{
		ID:    "dry-cupping-targeted",
		Title: i18n.LocalizedString{EN: "Dry Cupping (Targeted)", FR: "Ventouses Sèches (Ciblées)", AR: "الحجامة الجافة (موضعية)", ES: "Ventosas Secas (Localizada)"},
		Description: i18n.LocalizedString{
			EN: "Non-invasive suction therapy for circulation, pain relief & relaxation.",
			FR: "Thérapie non invasive pour la circulation, le soulagement de la douleur et la détente.",
			AR: "علاج بالشفط غير جراحي لتشيط الدورة الدموية وتخفيف الألم والاسترخاء.",
			ES: "Terapia de succión no invasiva para la circulación, el alivio del dolor y la relajación.",
		},
		Price:    "$75",
		Duration: "30 Mins",
		Benefits: i18n.LocalizedList{
			EN: []string{"Circulation", "Pain Relief"},
			FR: []string{"Circulation", "Soulagement"},
			AR: []string{"دورة دموية", "تخفيف الألم"},
			ES: []string{"Circulación", "Alivio"},
		},
	},
	{
		ID:    "dry-cupping-full",
		Title: i18n.LocalizedString{EN: "Dry Cupping (Full)", FR: "Ventouses Sèches (Complète)", AR: "الحجامة الجافة (كاملة)", ES: "Ventosas Secas (Completa)"},
		Description: i18n.LocalizedString{
			EN: "Full session. Non-invasive suction therapy for circulation, pain relief & relaxation.",
			FR: "Séance complète. Thérapie non invasive pour la circulation, le soulagement de la douleur et la détente.",
			AR: "جلسة كاملة. علاج بالشفط لتنشيط الدورة الدموية وتخفيف الألم.",
			ES: "Sesión completa. Terapia de succión no invasiva.",
		},
		Price:    "$95",
		Duration: "45-60 Mins",
		Benefits: i18n.LocalizedList{
			EN: []string{"Relaxation", "Full Body"},
			FR: []string{"Détente", "Corps Complet"},
			AR: []string{"استرخاء", "الجسم كامل"},
			ES: []string{"Relajación", "Cuerpo Completo"},
		},
	},
	{
		ID:    "wet-cupping-standard",
		Title: i18n.LocalizedString{EN: "Wet Cupping (Standard)", FR: "Hijama (Standard)", AR: "الحجامة الرطبة (قياسية)", ES: "Hijama (Estándar)"},
		Description: i18n.LocalizedString{
			EN: "Traditional detoxification therapy performed with sterile technique.",
			FR: "Thérapie traditionnelle de détoxification avec technique stérile.",
			AR: "علاج تقليدي للتخلص من السموم يتم بتقنية معقمة.",
			ES: "Terapia de desintoxicación tradicional realizada con técnica estéril.",
		},
		Price:       "$130",
		Duration:    "45-60 Mins",
		Recommended: true,
		Benefits: i18n.LocalizedList{
			EN: []string{"Detox", "Sterile"},
			FR: []string{"Détox", "Stérile"},
			AR: []string{"تخلص من السموم", "معقم"},
			ES: []string{"Desintoxicación", "Estéril"},
		},
	},
	{
		ID:    "wet-cupping-extended",
		Title: i18n.LocalizedString{EN: "Wet Cupping (Extended)", FR: "Hijama (Complète)", AR: "الحجامة الرطبة (مكثفة)", ES: "Hijama (Extendida)"},
		Description: i18n.LocalizedString{
			EN: "Extended session for comprehensive care and detoxification.",
			FR: "Séance prolongée pour des soins complets et une détoxification.",
			AR: "جلسة مطولة لرعاية شاملة وتخلص من السموم.",
			ES: "Sesión extendida para cuidado integral y desintoxicación.",
		},
		Price:    "$155",
		Duration: "60-75 Mins",
		Benefits: i18n.LocalizedList{
			EN: []string{"Deep Cleanse", "Comprehensive"},
			FR: []string{"Nettoyage Profond", "Complet"},
			AR: []string{"تنظيف عميق", "شامل"},
			ES: []string{"Limpieza Profunda", "Integral"},
		},
	},
	{
		ID:    "cupping-massage-45",
		Title: i18n.LocalizedString{EN: "Cupping Massage (45m)", FR: "Massage avec Ventouses (45m)", AR: "تدليك الحجامة (٤٥د)", ES: "Masaje con Ventosas (45m)"},
		Description: i18n.LocalizedString{
			EN: "Massage combined with moving cups.",
			FR: "Massage combiné avec ventouses mobiles.",
			AR: "تدليك مدمج مع كؤوس متحركة.",
			ES: "Masaje combinado con copas móviles.",
		},
		Price:    "$105",
		Duration: "45 Mins",
		Benefits: i18n.LocalizedList{
			EN: []string{"Circulation", "Muscle Relief"},
			FR: []string{"Circulation", "Soulagement"},
			AR: []string{"دورة دموية", "راحة العضلات"},
			ES: []string{"Circulación", "Alivio Muscular"},
		},
	},
	{
		ID:    "cupping-massage-60",
		Title: i18n.LocalizedString{EN: "Cupping Massage (60m)", FR: "Massage avec Ventouses (60m)", AR: "تدليك الحجامة (٦٠د)", ES: "Masaje con Ventosas (60m)"},
		Description: i18n.LocalizedString{
			EN: "Extended massage combined with moving cups.",
			FR: "Massage prolongé combiné avec ventouses mobiles.",
			AR: "تدليك مطول مدمج مع كؤوس متحركة.",
			ES: "Masaje extendido combinado con copas móviles.",
		},
		Price:    "$135",
		Duration: "60 Mins",
		Benefits: i18n.LocalizedList{
			EN: []string{"Deep Tissue", "Relaxation"},
			FR: []string{"Tissus Profonds", "Détente"},
			AR: []string{"أنسجة عميقة", "استرخاء"},
			ES: []string{"Tejido Profundo", "Relajación"},
		},
	},
	{
		ID:    "sunnah-cupping",
		Title: i18n.LocalizedString{EN: "Sunnah Cupping", FR: "Hijama selon la Sunnah", AR: "حجامة السنة", ES: "Hijama Sunnah"},
		Description: i18n.LocalizedString{
			EN: "Performed according to prophetic tradition (dates & points).",
			FR: "Effectuée selon la tradition prophétique (jours & points).",
			AR: "تُجرى وفقاً للتقاليد النبوية (الأيام والنقاط).",
			ES: "Realizada según la tradición profética (días y puntos).",
		},
		Price:    "$135",
		Duration: "60 Mins",
		Benefits: i18n.LocalizedList{
			EN: []string{"Prophetic", "Spiritual"},
			FR: []string{"Prophétique", "Spirituel"},
			AR: []string{"نبوي", "روحي"},
			ES: []string{"Profético", "Espiritual"},
		},
	},
	{
		ID:    "sports-cupping",
		Title: i18n.LocalizedString{EN: "Sports Cupping", FR: "Ventouses Sportives", AR: "حجامة الرياضيين", ES: "Ventosas Deportivas"},
		Description: i18n.LocalizedString{
			EN: "For athletes, recovery & performance.",
			FR: "Pour les athlètes, la récupération et la performance.",
			AR: "للرياضيين، للتعافي والأداء.",
			ES: "Para atletas, recuperación y rendimiento.",
		},
		Price:    "$115",
		Duration: "45-60 Mins",
		Benefits: i18n.LocalizedList{
			EN: []string{"Recovery", "Performance"},
			FR: []string{"Récupération", "Performance"},
			AR: []string{"تعافي", "أداء"},
			ES: []string{"Recuperación", "Rendimiento"},
		},
	},
	{
		ID:    "new-muslim-cupping",
		Title: i18n.LocalizedString{EN: "New Muslim Cupping", FR: "Hijama Nouveaux Musulmans", AR: "حجامة المسلمين الجدد", ES: "Hijama Nuevos Musulmanes"},
		Description: i18n.LocalizedString{
			EN: "Gentle introduction with explanation and care.",
			FR: "Introduction douce avec explications et accompagnement.",
			AR: "مقدمة لطيفة مع الشرح والرعاية.",
			ES: "Introducción suave con explicación y cuidado.",
		},
		Price:    "$95",
		Duration: "45 Mins",
		Benefits: i18n.LocalizedList{
			EN: []string{"Educational", "Welcoming"},
			FR: []string{"Éducatif", "Accueillant"},
			AR: []string{"تعليمي", "ترحيب"},
			ES: []string{"Educativo", "Acogedor"},
		},
	},
	{
		ID:    "therapeutic-cupping",
		Title: i18n.LocalizedString{EN: "Therapeutic Cupping", FR: "Ventouses Thérapeutiques", AR: "الحجامة العلاجية", ES: "Ventosas Terapéuticas"},
		Description: i18n.LocalizedString{
			EN: "Supportive, gentle, customized care for illness/chronic conditions.",
			FR: "Soins doux, adaptés et de soutien pour maladies/conditions chroniques.",
			AR: "رعاية داعمة ولطيفة ومخصصة للأمراض/الحالات المزمنة.",
			ES: "Cuidado de apoyo, suave y personalizado para enfermedades/condiciones crónicas.",
		},
		Price:    "$125",
		Duration: "60 Mins",
		Benefits: i18n.LocalizedList{
			EN: []string{"Chronic Care", "Gentle"},
			FR: []string{"Soins Chroniques", "Doux"},
			AR: []string{"رعاية مزمنة", "لطيف"},
			ES: []string{"Cuidado Crónico", "Suave"},
		},
	},
	{
		ID:    "couples-cupping",
		Title: i18n.LocalizedString{EN: "Couples Cupping", FR: "Hijama pour Couples", AR: "حجامة الأزواج", ES: "Hijama para Parejas"},
		Description: i18n.LocalizedString{
			EN: "Simultaneous sessions for two people in a private setting.",
			FR: "Séances simultanées pour deux personnes dans un cadre privé.",
			AR: "جلسات متزامنة لشخصين في مكان خاص.",
			ES: "Sesiones simultáneas para dos personas en un entorno privado.",
		},
		Price:    "$240",
		Duration: "60 Mins",
		Benefits: i18n.LocalizedList{
			EN: []string{"Simultaneous", "Discounted"},
			FR: []string{"Simultané", "Réduit"},
			AR: []string{"متزامن", "خصم"},
			ES: []string{"Simultáneo", "Descuento"},
		},
	},
}

// DefaultFAQs is the canonical FAQ set.
var DefaultFAQs = []FAQEntry{
	{
		ID: "1",
		Question: i18n.LocalizedString{
			EN: "Is Hijama painful?",
			FR: "La Hijama est-elle douloureuse ?",
			AR: "هل الحجامة مؤلمة؟",
			ES: "¿Es dolorosa la Hijama?",
		},
		Answer: i18n.LocalizedString{
			EN: "Most patients describe the sensation as a light scratching or pinching. The cups themselves feel like a tight massage.",
			FR: "La plupart décrivent une sensation de légère griffure. Les ventouses ressemblent à un massage ferme.",
			AR: "يصف معظم المرضى الإحساس بأنه خدش خفيف. الكؤوس نفسها تشبه التدليك القوي.",
			ES: "La mayoría describe la sensación como un ligero rasguño. Las ventosas se sienten como un masaje firme.",
		},
	},
	{
		ID: "2",
		Question: i18n.LocalizedString{
			EN: "How long do the marks last?",
			FR: "Combien de temps durent les marques ?",
			AR: "كم تستمر العلامات؟",
			ES: "¿Cuánto duran las marcas?",
		},
		Answer: i18n.LocalizedString{
			EN: "The circular marks typically fade within 3 to 10 days, depending on your body's circulation.",
			FR: "Les marques circulaires s'estompent généralement en 3 à 10 jours.",
			AR: "تتلاشى العلامات الدائرية عادةً خلال 3 إلى 10 أيام.",
			ES: "Las marcas circulares generalmente desaparecen en 3 a 10 días.",
		},
	},
	{
		ID: "3",
		Question: i18n.LocalizedString{
			EN: "Can I eat before the session?",
			FR: "Puis-je manger avant ?",
			AR: "هل يمكنني الأكل قبل الجلسة؟",
			ES: "¿Puedo comer antes?",
		},
		Answer: i18n.LocalizedString{
			EN: "It is Sunnah and medically recommended to have an empty stomach for at least 2-3 hours before Hijama.",
			FR: "Il est recommandé (Sunnah) d'être à jeun depuis au moins 2-3 heures.",
			AR: "من السنة ويوصى طبياً بأن تكون المعدة فارغة لمدة 2-3 ساعات على الأقل.",
			ES: "Es Sunnah y médicamente recomendable tener el estómago vacío por al menos 2-3 horas.",
		},
	},
	{
		ID: "4",
		Question: i18n.LocalizedString{
			EN: "Is it safe?",
			FR: "Est-ce sûr ?",
			AR: "هل هي آمنة؟",
			ES: "¿Es seguro?",
		},
		Answer: i18n.LocalizedString{
			EN: "Yes. We strictly follow a single-use policy for all cups and blades. Our practitioners are certified.",
			FR: "Oui. Nous suivons strictement une politique à usage unique pour tout le matériel.",
			AR: "نعم. نتبع سياسة الاستخدام الواحد بصرامة لجميع الكؤوس والشفرات.",
			ES: "Sí. Seguimos estrictamente una política de un solo uso para todo el equipo.",
		},
	},
}
