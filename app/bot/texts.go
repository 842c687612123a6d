package bot

// User-facing copy. The bot speaks Russian; keep the wording in one place so
// the handlers stay readable.
const (
	textIntro = "Привет, рады тебя видеть!\n\n" +
		"Этот бот поможет тебе оформить красивый инвайт, а также даёт право на участие в розыгрыше VIP билета на PRO PARTY от Digital CPA Club. " +
		"Вечеринка пройдёт 14 августа в Москве в noorbar.com, с кейс-программой, " +
		"танцами, нетворкингом и коктейлями.\n\n" +
		"Подробная информация и регистрация на мероприятие " +
		"[здесь](https://digitalclub.timepad.ru/event/3457454/)"

	textAskFirstName = "Как тебя зовут?"
	textAskLastName  = "Какая у тебя фамилия?"
	textAskCompany   = "Из какой компании?"
	textNiceToMeet   = "%s, приятно познакомиться."
	textAskPhoto     = "Теперь пришли свою фотографию:"

	textPhotoReceived = "Спасибо! Ещё секунду 😊"
	textPhotoRetry    = "Не получилось обработать фото 😔 Пришли, пожалуйста, другое изображение."
	textNotAnImage    = "Кажется, это не картинка. Пришли, пожалуйста, фотографию 🙂"

	textShareStories = "Чтобы участвовать в розыгрыше VIP билета —\n" +
		"Опубликуй картинку в сторис TG, FB или IG, прикрепи ссылку на Timepad (https://digitalclub.timepad.ru/event/3457454/)\n"
	textDrawInfo = "🎁 Победитель будет выбран случайным образом 12 августа.\n\n" +
		"Следи за розыгрышем и его результатами в клубе [здесь](https://t.me/+l6rrLeN7Eho3ZjQy)\n\n" +
		"Желаем тебе удачи! 🍀"
	textShareInvite = "Поделись приглашением с коллегами по рынку: @proparty_invite_bot"

	textRetryHint   = "Если хочешь пересоздать — нажми на кнопку"
	textRetryButton = "🔄 Пересоздать картинку"
	textRetryAck    = "Окей! Отправь новое фото, и мы пересоздадим пригласительный ✨"
	textRetryNoData = "Сначала давай познакомимся — отправь /start 🙂"

	textWhoami  = "Твой user_id: %d"
	textMystats = "Ты пригласил %d человек(а)."

	textDrawDenied      = "У тебя нет доступа к розыгрышу."
	textDrawRegistryErr = "Ошибка доступа к таблице."
	textDrawEmpty       = "Список участников пуст."
	textDrawStart       = "🎰 Запускаем барабан..."
	textDrawReveal      = "🌀 %s..."
	textDrawDrums       = "🥁🥁🥁"
	textDrawWinner      = "🎉 Победитель розыгрыша:\n\n👑 *%s*, %s\n\n🔥 Поздравляем!"
	textDrawWinnerDM    = "🎉 Поздравляем, %s!\n\n" +
		"Ты выиграл приз от Digital CPA Club 🎁\n" +
		"Скоро с тобой свяжется организатор. До встречи на Pro Party!"
	textDrawDMFailed = "⚠️ Не удалось отправить личное сообщение победителю."
)

// retryCallbackKey identifies the "regenerate the invite" inline button.
const retryCallbackKey = "retry_photo"
