package declinecodes

// Customer-facing messages shared by multiple decline codes. Each English
// constant pairs with the Japanese one of the same name.
const (
	userActionTryAlternative   = "Please try again using an alternative payment method."
	userActionContactIssuer    = "Please contact your card issuer for more information."
	userActionCheckDetails     = "Please check your card details and try again."
	userActionCheckPIN         = "Please check your PIN and try again."
	userActionEnterPIN         = "Please try again and enter your PIN."
	userActionTryAgain         = "Please try again."
	userActionTryLater         = "Please try again later."
	userActionUseAnotherCard   = "Please use another card."
	userActionCompleteAuth     = "Please complete the authentication and try again."
	userActionCheckDuplicate   = "Please check whether your payment has already been completed."
	userActionUseGenuineCard   = "Please use a genuine card to make a payment."
	userActionTryAlternativeJA = "別のお支払い方法を使用してもう一度お試しください。"
	userActionContactIssuerJA  = "詳細についてはカード発行会社にお問い合わせください。"
	userActionCheckDetailsJA   = "カード情報をご確認のうえ、もう一度お試しください。"
	userActionCheckPINJA       = "暗証番号をご確認のうえ、もう一度お試しください。"
	userActionEnterPINJA       = "もう一度お試しのうえ、暗証番号を入力してください。"
	userActionTryAgainJA       = "もう一度お試しください。"
	userActionTryLaterJA       = "しばらくしてからもう一度お試しください。"
	userActionUseAnotherCardJA = "別のカードをご利用ください。"
	userActionCompleteAuthJA   = "本人認証を完了してから、もう一度お試しください。"
	userActionCheckDuplicateJA = "お支払いがすでに完了していないかご確認ください。"
	userActionUseGenuineCardJA = "実際のカードを使用してお支払いください。"
)

// Texts shared by the family of codes the issuer declines without giving a
// reason.
const (
	descUnknownReason      = "The card was declined for an unknown reason."
	descUnknownReasonJA    = "不明な理由によりカードが拒否されました。"
	nextStepsContactIssuer = "The customer needs to contact their card issuer for more information."
	// nextStepsDoNotDisclose applies to declines whose real reason must not
	// reach the customer (fraud, lost or stolen cards, block lists).
	nextStepsDoNotDisclose = "The specific reason for the decline must not be reported to the customer. Instead, present it as a generic decline."
)

// declineDataset returns the embedded dataset in documentation order. The
// registry ingests it exactly once on first use; keeping it behind a
// function lets tests build throwaway registries from pristine data.
func declineDataset() []DeclineRecord {
	return []DeclineRecord{
		{
			Code:           "approve_with_id",
			Category:       CategorySoftDecline,
			Description:    "The payment can't be authorized.",
			NextSteps:      "Attempt the payment again. If it still can't be processed, the customer needs to contact their card issuer.",
			NextUserAction: userActionTryAgain,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    "この支払いは承認できませんでした。",
					NextUserAction: userActionTryAgainJA,
				},
			},
		},
		{
			Code:           "authentication_required",
			Category:       CategorySoftDecline,
			Description:    "The card was declined because the transaction requires authentication.",
			NextSteps:      "The customer should try again and authenticate their card when prompted during the transaction.",
			NextUserAction: userActionCompleteAuth,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    "本人認証が必要なため、カードが拒否されました。",
					NextUserAction: userActionCompleteAuthJA,
				},
			},
		},
		{
			Code:           "call_issuer",
			Category:       CategorySoftDecline,
			Description:    descUnknownReason,
			NextSteps:      nextStepsContactIssuer,
			NextUserAction: userActionContactIssuer,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    descUnknownReasonJA,
					NextUserAction: userActionContactIssuerJA,
				},
			},
		},
		{
			Code:           "card_not_supported",
			Category:       CategoryHardDecline,
			Description:    "The card does not support this type of purchase.",
			NextSteps:      "The customer needs to contact their card issuer to make sure their card can be used for this type of purchase.",
			NextUserAction: userActionTryAlternative,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    "このカードは、この種類の購入に対応していません。",
					NextUserAction: userActionTryAlternativeJA,
				},
			},
		},
		{
			Code:           "card_velocity_exceeded",
			Category:       CategorySoftDecline,
			Description:    "The customer has exceeded the balance or credit limit available on their card.",
			NextSteps:      nextStepsContactIssuer,
			NextUserAction: userActionTryAlternative,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    "カードの利用限度額または残高の上限を超えています。",
					NextUserAction: userActionTryAlternativeJA,
				},
			},
		},
		{
			Code:           "currency_not_supported",
			Category:       CategoryHardDecline,
			Description:    "The card does not support the specified currency.",
			NextSteps:      "The customer needs to check with their card issuer whether the card can be used for the specified currency.",
			NextUserAction: userActionTryAlternative,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    "このカードは指定された通貨に対応していません。",
					NextUserAction: userActionTryAlternativeJA,
				},
			},
		},
		{
			Code:           "do_not_honor",
			Category:       CategorySoftDecline,
			Description:    descUnknownReason,
			NextSteps:      nextStepsContactIssuer,
			NextUserAction: userActionContactIssuer,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    descUnknownReasonJA,
					NextUserAction: userActionContactIssuerJA,
				},
			},
		},
		{
			Code:           "do_not_try_again",
			Category:       CategoryHardDecline,
			Description:    descUnknownReason,
			NextSteps:      nextStepsContactIssuer,
			NextUserAction: userActionContactIssuer,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    descUnknownReasonJA,
					NextUserAction: userActionContactIssuerJA,
				},
			},
		},
		{
			Code:           "duplicate_transaction",
			Category:       CategorySoftDecline,
			Description:    "A transaction with identical amount and card information was submitted very recently.",
			NextSteps:      "Check whether a recent payment already exists before retrying.",
			NextUserAction: userActionCheckDuplicate,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    "同一の金額とカード情報による取引が直前に送信されています。",
					NextUserAction: userActionCheckDuplicateJA,
				},
			},
		},
		{
			Code:           "expired_card",
			Category:       CategoryHardDecline,
			Description:    "The card has expired.",
			NextSteps:      "The customer should use another card.",
			NextUserAction: userActionUseAnotherCard,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    "カードの有効期限が切れています。",
					NextUserAction: userActionUseAnotherCardJA,
				},
			},
		},
		{
			Code:           "fraudulent",
			Category:       CategoryHardDecline,
			Description:    "The payment was declined because it is suspected to be fraudulent.",
			NextSteps:      nextStepsDoNotDisclose,
			NextUserAction: userActionContactIssuer,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    "不正の疑いがあるため、支払いが拒否されました。",
					NextUserAction: userActionContactIssuerJA,
				},
			},
		},
		{
			Code:           "generic_decline",
			Category:       CategorySoftDecline,
			Description:    descUnknownReason,
			NextSteps:      nextStepsContactIssuer,
			NextUserAction: userActionContactIssuer,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    descUnknownReasonJA,
					NextUserAction: userActionContactIssuerJA,
				},
			},
		},
		{
			Code:           "incorrect_cvc",
			Category:       CategoryHardDecline,
			Description:    "The CVC number is incorrect.",
			NextSteps:      "The customer should try again using the correct CVC.",
			NextUserAction: userActionCheckDetails,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    "セキュリティコードが正しくありません。",
					NextUserAction: userActionCheckDetailsJA,
				},
			},
		},
		{
			Code:           "incorrect_number",
			Category:       CategoryHardDecline,
			Description:    "The card number is incorrect.",
			NextSteps:      "The customer should try again using the correct card number.",
			NextUserAction: userActionCheckDetails,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    "カード番号が正しくありません。",
					NextUserAction: userActionCheckDetailsJA,
				},
			},
		},
		{
			Code:           "incorrect_pin",
			Category:       CategoryHardDecline,
			Description:    "The PIN entered is incorrect. This decline code only applies to payments made with a card reader.",
			NextSteps:      "The customer should try again using the correct PIN.",
			NextUserAction: userActionCheckPIN,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    "入力された暗証番号が正しくありません。この拒否コードはカードリーダーでの支払いにのみ適用されます。",
					NextUserAction: userActionCheckPINJA,
				},
			},
		},
		{
			Code:           "incorrect_zip",
			Category:       CategoryHardDecline,
			Description:    "The postal code is incorrect.",
			NextSteps:      "The customer should try again using the correct billing postal code.",
			NextUserAction: userActionCheckDetails,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    "郵便番号が正しくありません。",
					NextUserAction: userActionCheckDetailsJA,
				},
			},
		},
		{
			Code:           "insufficient_funds",
			Category:       CategorySoftDecline,
			Description:    "The card has insufficient funds to complete the purchase.",
			NextSteps:      "The customer should use an alternative payment method.",
			NextUserAction: userActionTryAlternative,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    "カードの残高が不足しているため、購入を完了できません。",
					NextUserAction: userActionTryAlternativeJA,
				},
			},
		},
		{
			Code:           "invalid_account",
			Category:       CategoryHardDecline,
			Description:    "The card, or the account it is connected to, is invalid.",
			NextSteps:      "The customer needs to contact their card issuer to check that the card is working correctly.",
			NextUserAction: userActionContactIssuer,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    "カード、またはカードに紐づく口座が無効です。",
					NextUserAction: userActionContactIssuerJA,
				},
			},
		},
		{
			Code:           "invalid_amount",
			Category:       CategoryHardDecline,
			Description:    "The payment amount is invalid or exceeds the allowed amount.",
			NextSteps:      "If the amount looks correct, the customer needs to check with their card issuer that they can make purchases of that amount.",
			NextUserAction: userActionContactIssuer,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    "支払い金額が無効であるか、許可された金額を超えています。",
					NextUserAction: userActionContactIssuerJA,
				},
			},
		},
		{
			Code:           "invalid_cvc",
			Category:       CategoryHardDecline,
			Description:    "The CVC number is incorrect.",
			NextSteps:      "The customer should try again using the correct CVC.",
			NextUserAction: userActionCheckDetails,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    "セキュリティコードが正しくありません。",
					NextUserAction: userActionCheckDetailsJA,
				},
			},
		},
		{
			Code:           "invalid_expiry_month",
			Category:       CategoryHardDecline,
			Description:    "The expiration month is invalid.",
			NextSteps:      "The customer should try again using the correct expiration date.",
			NextUserAction: userActionCheckDetails,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    "有効期限の月が正しくありません。",
					NextUserAction: userActionCheckDetailsJA,
				},
			},
		},
		{
			Code:           "invalid_expiry_year",
			Category:       CategoryHardDecline,
			Description:    "The expiration year is invalid.",
			NextSteps:      "The customer should try again using the correct expiration date.",
			NextUserAction: userActionCheckDetails,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    "有効期限の年が正しくありません。",
					NextUserAction: userActionCheckDetailsJA,
				},
			},
		},
		{
			Code:           "invalid_number",
			Category:       CategoryHardDecline,
			Description:    "The card number is incorrect.",
			NextSteps:      "The customer should try again using the correct card number.",
			NextUserAction: userActionCheckDetails,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    "カード番号が正しくありません。",
					NextUserAction: userActionCheckDetailsJA,
				},
			},
		},
		{
			Code:           "invalid_pin",
			Category:       CategoryHardDecline,
			Description:    "The PIN entered is incorrect. This decline code only applies to payments made with a card reader.",
			NextSteps:      "The customer should try again using the correct PIN.",
			NextUserAction: userActionCheckPIN,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    "入力された暗証番号が正しくありません。この拒否コードはカードリーダーでの支払いにのみ適用されます。",
					NextUserAction: userActionCheckPINJA,
				},
			},
		},
		{
			Code:           "issuer_not_available",
			Category:       CategorySoftDecline,
			Description:    "The card issuer couldn't be reached, so the payment couldn't be authorized.",
			NextSteps:      "Attempt the payment again. If it still can't be processed, the customer needs to contact their card issuer.",
			NextUserAction: userActionTryLater,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    "カード発行会社に接続できなかったため、支払いを承認できませんでした。",
					NextUserAction: userActionTryLaterJA,
				},
			},
		},
		{
			Code:           "lost_card",
			Category:       CategoryHardDecline,
			Description:    "The payment was declined because the card is reported lost.",
			NextSteps:      nextStepsDoNotDisclose,
			NextUserAction: userActionContactIssuer,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    "カードが紛失として届け出られているため、支払いが拒否されました。",
					NextUserAction: userActionContactIssuerJA,
				},
			},
		},
		{
			Code:           "merchant_blacklist",
			Category:       CategoryHardDecline,
			Description:    "The payment was declined because it matches a value on the merchant's block list.",
			NextSteps:      nextStepsDoNotDisclose,
			NextUserAction: userActionContactIssuer,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    "加盟店のブロックリストに一致したため、支払いが拒否されました。",
					NextUserAction: userActionContactIssuerJA,
				},
			},
		},
		{
			Code:           "new_account_information_available",
			Category:       CategoryHardDecline,
			Description:    "The card, or the account it is connected to, is invalid.",
			NextSteps:      nextStepsContactIssuer,
			NextUserAction: userActionContactIssuer,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    "カード、またはカードに紐づく口座が無効です。",
					NextUserAction: userActionContactIssuerJA,
				},
			},
		},
		{
			Code:           "no_action_taken",
			Category:       CategorySoftDecline,
			Description:    descUnknownReason,
			NextSteps:      nextStepsContactIssuer,
			NextUserAction: userActionContactIssuer,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    descUnknownReasonJA,
					NextUserAction: userActionContactIssuerJA,
				},
			},
		},
		{
			Code:           "not_permitted",
			Category:       CategoryHardDecline,
			Description:    "The payment isn't permitted.",
			NextSteps:      nextStepsContactIssuer,
			NextUserAction: userActionContactIssuer,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    "この支払いは許可されていません。",
					NextUserAction: userActionContactIssuerJA,
				},
			},
		},
		{
			Code:           "offline_pin_required",
			Category:       CategorySoftDecline,
			Description:    "The card was declined because it requires a PIN.",
			NextSteps:      "The customer should try again by inserting their card and entering a PIN.",
			NextUserAction: userActionEnterPIN,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    "暗証番号が必要なため、カードが拒否されました。",
					NextUserAction: userActionEnterPINJA,
				},
			},
		},
		{
			Code:           "online_or_offline_pin_required",
			Category:       CategorySoftDecline,
			Description:    "The card was declined because it requires a PIN.",
			NextSteps:      "If the card reader supports online PIN, prompt the customer for their PIN without creating a new transaction. Otherwise the customer should try again by inserting their card and entering a PIN.",
			NextUserAction: userActionEnterPIN,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    "暗証番号が必要なため、カードが拒否されました。",
					NextUserAction: userActionEnterPINJA,
				},
			},
		},
		{
			Code:           "pickup_card",
			Category:       CategoryHardDecline,
			Description:    "The customer can't use this card for this payment (it might have been reported lost or stolen).",
			NextSteps:      nextStepsContactIssuer,
			NextUserAction: userActionContactIssuer,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    "このカードでは支払いを行えません（紛失または盗難の届け出がある可能性があります）。",
					NextUserAction: userActionContactIssuerJA,
				},
			},
		},
		{
			Code:           "pin_try_exceeded",
			Category:       CategoryHardDecline,
			Description:    "The allowable number of PIN tries was exceeded.",
			NextSteps:      "The customer must use another card or method of payment.",
			NextUserAction: userActionTryAlternative,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    "暗証番号の入力回数が上限を超えました。",
					NextUserAction: userActionTryAlternativeJA,
				},
			},
		},
		{
			Code:           "processing_error",
			Category:       CategorySoftDecline,
			Description:    "An error occurred while processing the card.",
			NextSteps:      "Attempt the payment again. If it still can't be processed, try again later.",
			NextUserAction: userActionTryLater,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    "カードの処理中にエラーが発生しました。",
					NextUserAction: userActionTryLaterJA,
				},
			},
		},
		{
			Code:           "reenter_transaction",
			Category:       CategorySoftDecline,
			Description:    "The payment couldn't be processed by the issuer for an unknown reason.",
			NextSteps:      "Attempt the payment again. If it still can't be processed, the customer needs to contact their card issuer.",
			NextUserAction: userActionTryAgain,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    "不明な理由により、カード発行会社が支払いを処理できませんでした。",
					NextUserAction: userActionTryAgainJA,
				},
			},
		},
		{
			Code:           "restricted_card",
			Category:       CategoryHardDecline,
			Description:    "The customer can't use this card for this payment (it might have been reported lost or stolen).",
			NextSteps:      nextStepsContactIssuer,
			NextUserAction: userActionContactIssuer,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    "このカードでは支払いを行えません（紛失または盗難の届け出がある可能性があります）。",
					NextUserAction: userActionContactIssuerJA,
				},
			},
		},
		{
			Code:           "revocation_of_all_authorizations",
			Category:       CategoryHardDecline,
			Description:    descUnknownReason,
			NextSteps:      nextStepsContactIssuer,
			NextUserAction: userActionContactIssuer,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    descUnknownReasonJA,
					NextUserAction: userActionContactIssuerJA,
				},
			},
		},
		{
			Code:           "revocation_of_authorization",
			Category:       CategoryHardDecline,
			Description:    descUnknownReason,
			NextSteps:      nextStepsContactIssuer,
			NextUserAction: userActionContactIssuer,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    descUnknownReasonJA,
					NextUserAction: userActionContactIssuerJA,
				},
			},
		},
		{
			Code:           "security_violation",
			Category:       CategoryHardDecline,
			Description:    descUnknownReason,
			NextSteps:      nextStepsContactIssuer,
			NextUserAction: userActionContactIssuer,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    descUnknownReasonJA,
					NextUserAction: userActionContactIssuerJA,
				},
			},
		},
		{
			Code:           "service_not_allowed",
			Category:       CategoryHardDecline,
			Description:    descUnknownReason,
			NextSteps:      nextStepsContactIssuer,
			NextUserAction: userActionContactIssuer,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    descUnknownReasonJA,
					NextUserAction: userActionContactIssuerJA,
				},
			},
		},
		{
			Code:           "stolen_card",
			Category:       CategoryHardDecline,
			Description:    "The payment was declined because the card is reported stolen.",
			NextSteps:      nextStepsDoNotDisclose,
			NextUserAction: userActionContactIssuer,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    "カードが盗難として届け出られているため、支払いが拒否されました。",
					NextUserAction: userActionContactIssuerJA,
				},
			},
		},
		{
			Code:           "stop_payment_order",
			Category:       CategoryHardDecline,
			Description:    descUnknownReason,
			NextSteps:      nextStepsContactIssuer,
			NextUserAction: userActionContactIssuer,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    descUnknownReasonJA,
					NextUserAction: userActionContactIssuerJA,
				},
			},
		},
		{
			Code:           "testmode_decline",
			Category:       CategoryHardDecline,
			Description:    "A Stripe test card number was used.",
			NextSteps:      "A genuine card must be used to make the payment.",
			NextUserAction: userActionUseGenuineCard,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    "Stripe のテストカード番号が使用されました。",
					NextUserAction: userActionUseGenuineCardJA,
				},
			},
		},
		{
			Code:           "transaction_not_allowed",
			Category:       CategoryHardDecline,
			Description:    descUnknownReason,
			NextSteps:      nextStepsContactIssuer,
			NextUserAction: userActionContactIssuer,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    descUnknownReasonJA,
					NextUserAction: userActionContactIssuerJA,
				},
			},
		},
		{
			Code:           "try_again_later",
			Category:       CategorySoftDecline,
			Description:    descUnknownReason,
			NextSteps:      "Ask the customer to attempt the payment again. If subsequent payments are declined, the customer needs to contact their card issuer.",
			NextUserAction: userActionTryLater,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    descUnknownReasonJA,
					NextUserAction: userActionTryLaterJA,
				},
			},
		},
		{
			Code:           "withdrawal_count_limit_exceeded",
			Category:       CategorySoftDecline,
			Description:    "The customer has exceeded the balance or credit limit available on their card.",
			NextSteps:      "The customer should use an alternative payment method.",
			NextUserAction: userActionTryAlternative,
			Translations: map[Locale]Translation{
				LocaleJA: {
					Description:    "カードの利用限度額または残高の上限を超えています。",
					NextUserAction: userActionTryAlternativeJA,
				},
			},
		},
	}
}
