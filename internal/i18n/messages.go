package i18n

import "golang.org/x/text/language"

// Keys shared between packages. The English text is the key.
const (
	AppName            = "EternalCoin"
	CaptionError       = "Error"
	CaptionWarning     = "Warning"
	CaptionInformation = "Information"
	CaptionConfirmFee  = "Confirm transaction fee"
	CaptionUpdates     = "EternalCoin Update Checker"
	CaptionRuntime     = "Runtime error"

	FeePrompt = "This transaction is over the size limit. You can still send it for a fee of %s, which goes to the nodes that process your transaction and helps to support the network. Do you want to pay the fee?"

	MsgLoading        = "Loading..."
	MsgLoadingNode    = "Connecting to node..."
	MsgDone           = "Done loading"
	MsgNodeOffline    = "The node is not responding. Status shown may be out of date."
	MsgNodeBack       = "Connection to the node restored."
	MsgUpToDate       = "Your client is up to date."
	MsgUpdate         = "There is an update available! Please visit http://eternalcoin.info."
	MsgUpdateFailed   = "Could not check for updates. Please check manually at http://eternalcoin.info."
	MsgDataDirLocked  = "Cannot obtain a lock on the data directory. EternalCoin is probably already running."
	MsgDataDirMissing = "Specified data directory does not exist."
	MsgRuntimePanic   = "A fatal error occurred. EternalCoin can no longer continue safely and will quit."
	MsgURIReceived    = "Payment request received"
)

var translations = map[language.Tag]map[string]string{
	language.German: {
		CaptionError:       "Fehler",
		CaptionWarning:     "Warnung",
		CaptionInformation: "Hinweis",
		CaptionConfirmFee:  "Transaktionsgebühr bestätigen",
		CaptionUpdates:     "EternalCoin Update-Prüfung",
		CaptionRuntime:     "Laufzeitfehler",
		FeePrompt:          "Die Transaktion übersteigt das Größenlimit. Sie können sie trotzdem gegen eine Gebühr von %s senden, die an die Knoten geht, die Ihre Transaktion verarbeiten. Möchten Sie die Gebühr bezahlen?",
		MsgLoading:         "Wird geladen...",
		MsgLoadingNode:     "Verbinde mit dem Knoten...",
		MsgDone:            "Laden abgeschlossen",
		MsgNodeOffline:     "Der Knoten antwortet nicht. Der angezeigte Status ist eventuell veraltet.",
		MsgNodeBack:        "Verbindung zum Knoten wiederhergestellt.",
		MsgUpToDate:        "Ihr Client ist aktuell.",
		MsgUpdate:          "Ein Update ist verfügbar! Bitte besuchen Sie http://eternalcoin.info.",
		MsgUpdateFailed:    "Update-Prüfung fehlgeschlagen. Bitte prüfen Sie manuell auf http://eternalcoin.info.",
		MsgDataDirLocked:   "Das Datenverzeichnis ist gesperrt. EternalCoin läuft wahrscheinlich bereits.",
		MsgDataDirMissing:  "Das angegebene Datenverzeichnis existiert nicht.",
		MsgRuntimePanic:    "Ein schwerwiegender Fehler ist aufgetreten. EternalCoin wird beendet.",
		MsgURIReceived:     "Zahlungsanforderung empfangen",
	},
	language.French: {
		CaptionError:       "Erreur",
		CaptionWarning:     "Avertissement",
		CaptionInformation: "Information",
		CaptionConfirmFee:  "Confirmer les frais de transaction",
		CaptionUpdates:     "Vérification des mises à jour EternalCoin",
		CaptionRuntime:     "Erreur d'exécution",
		FeePrompt:          "Cette transaction dépasse la taille limite. Vous pouvez l'envoyer pour des frais de %s, versés aux nœuds qui traitent votre transaction. Voulez-vous payer ces frais ?",
		MsgLoading:         "Chargement...",
		MsgLoadingNode:     "Connexion au nœud...",
		MsgDone:            "Chargement terminé",
		MsgNodeOffline:     "Le nœud ne répond pas. L'état affiché peut être obsolète.",
		MsgNodeBack:        "Connexion au nœud rétablie.",
		MsgUpToDate:        "Votre client est à jour.",
		MsgUpdate:          "Une mise à jour est disponible ! Rendez-vous sur http://eternalcoin.info.",
		MsgUpdateFailed:    "Impossible de vérifier les mises à jour. Vérifiez sur http://eternalcoin.info.",
		MsgDataDirLocked:   "Impossible de verrouiller le répertoire de données. EternalCoin est probablement déjà lancé.",
		MsgDataDirMissing:  "Le répertoire de données indiqué n'existe pas.",
		MsgRuntimePanic:    "Une erreur fatale est survenue. EternalCoin va se fermer.",
		MsgURIReceived:     "Demande de paiement reçue",
	},
}
